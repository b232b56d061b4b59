package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/nextcrud/internal/models"
)

var allKinds = []models.ArtifactKind{
	models.ArtifactCollectionRoute,
	models.ArtifactItemRoute,
	models.ArtifactTypeDecl,
	models.ArtifactValidationSchema,
	models.ArtifactDataHooks,
	models.ArtifactActionFunctions,
	models.ArtifactClientConfig,
}

func TestTemplateRegistry_AllTemplatesParse(t *testing.T) {
	registry, err := NewTemplateRegistry()
	require.NoError(t, err)

	for _, name := range registry.Names() {
		_, ok := registry.Get(name)
		assert.True(t, ok, "template %s should be registered", name)
	}

	_, ok := registry.Get("upstream-error")
	assert.True(t, ok, "shared partial should be registered")
}

func TestCatalog_CoversEveryKind(t *testing.T) {
	assert.Len(t, Catalog, len(allKinds))
	for _, kind := range allKinds {
		spec, ok := Lookup(kind)
		require.True(t, ok, "kind %s", kind)
		assert.Equal(t, kind, spec.Kind)
	}
}

func TestCatalog_LayoutMatchesArtifactPaths(t *testing.T) {
	name := models.Normalize("orders")

	assert.Len(t, artifactPaths, len(Catalog))
	for _, kind := range allKinds {
		pathOf, ok := artifactPaths[kind]
		require.True(t, ok, "kind %s", kind)
		assert.Equal(t, pathOf(name), Catalog[kind].RelativePath(name), "kind %s", kind)

		content, err := Catalog[kind].Render(name, models.NewClient())
		require.NoError(t, err, "kind %s", kind)
		assert.NotEmpty(t, content, "kind %s", kind)
	}
}

func TestRelativePaths(t *testing.T) {
	name := models.Normalize("orders")

	tests := map[models.ArtifactKind]string{
		models.ArtifactCollectionRoute:  "app/api/order/route.ts",
		models.ArtifactItemRoute:        "app/api/order/[id]/route.ts",
		models.ArtifactTypeDecl:         "app/api/order/types/order.ts",
		models.ArtifactValidationSchema: "app/api/order/schemas/orderSchemas.ts",
		models.ArtifactDataHooks:        "app/api/order/hooks/useOrder.ts",
		models.ArtifactActionFunctions:  "app/api/order/actions/orderActions.ts",
		models.ArtifactClientConfig:     "lib/api.ts",
	}

	for kind, expected := range tests {
		assert.Equal(t, expected, RelativePath(kind, name), "kind %s", kind)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	name := models.Normalize("products")
	clients := []models.ClientRef{models.NoClient(), models.NewClient(), models.ExistingClient("@/shared/http")}

	for _, kind := range allKinds {
		for _, client := range clients {
			first, err := Render(kind, name, client)
			require.NoError(t, err)
			second, err := Render(kind, name, client)
			require.NoError(t, err)
			assert.Equal(t, first, second, "kind %s client %s", kind, client.Mode)
			assert.NotContains(t, first, "<no value>")
		}
	}
}

func TestRender_TypeDecl(t *testing.T) {
	content, err := Render(models.ArtifactTypeDecl, models.Normalize("users"), models.NoClient())
	require.NoError(t, err)

	expected := `export interface User {
  id: string
}

export interface RouteParams {
  params: {
    id: string
  }
}

export type CreateUserDto = Omit<User, 'id'>
export type UpdateUserDto = Partial<User>
`
	assert.Equal(t, expected, content)
}

func TestRender_ValidationSchema(t *testing.T) {
	content, err := Render(models.ArtifactValidationSchema, models.Normalize("users"), models.NoClient())
	require.NoError(t, err)

	assert.Contains(t, content, "import { z } from 'zod'")
	assert.Contains(t, content, "export const userSchema = z.object({\n  id: z.string().optional(),\n})")
	assert.Contains(t, content, "export const createUserSchema = userSchema.omit({ id: true })")
	assert.Contains(t, content, "export const updateUserSchema = userSchema.partial()")
}

func TestRender_CollectionRoute(t *testing.T) {
	content, err := Render(models.ArtifactCollectionRoute, models.Normalize("orders"), models.NoClient())
	require.NoError(t, err)

	assert.Contains(t, content, "const url = `${process.env.NEXT_PUBLIC_API_URL}`")
	assert.Contains(t, content, "export async function GET(request: NextRequest)")
	assert.Contains(t, content, "export async function POST(request: NextRequest)")
	assert.Contains(t, content, "axios.get(`${url}/order`")
	assert.Contains(t, content, "axios.post(`${url}/order`, body")
	assert.Contains(t, content, "...(authHeader && { Authorization: authHeader }),")
	assert.Contains(t, content, "{ error: error.message, details: error.response.data },\n        { status: error.response.status }")
	assert.Contains(t, content, "{ status: 500 }")
	assert.Equal(t, 2, strings.Count(content, "axios.isAxiosError(error) && error.response"))
}

func TestRender_ItemRoute(t *testing.T) {
	name := models.Normalize("orders")
	content, err := Render(models.ArtifactItemRoute, name, models.NoClient())
	require.NoError(t, err)

	assert.Contains(t, content, "import { RouteParams } from '../types/order'")
	for _, method := range []string{"GET", "PUT", "DELETE"} {
		assert.Contains(t, content, "export async function "+method+"(request: NextRequest, { params }: RouteParams)")
	}
	assert.Contains(t, content, "axios.delete(`${url}/order/${id}`")
	assert.Contains(t, content, "NextResponse.json({ success: true })")
	assert.Equal(t, 3, strings.Count(content, "{ status: 500 }"))
}

func TestRender_DataHooks(t *testing.T) {
	content, err := Render(models.ArtifactDataHooks, models.Normalize("orders"), models.NoClient())
	require.NoError(t, err)

	assert.Contains(t, content, "export const useOrderList = () =>")
	assert.Contains(t, content, "export const useOrder = (id: string) =>")
	assert.Contains(t, content, "enabled: !!id")
	assert.Contains(t, content, "export const useCreateOrder = () =>")
	assert.Contains(t, content, "export const useUpdateOrder = (id: string) =>")
	assert.Contains(t, content, "export const useDeleteOrder = () =>")
	assert.Contains(t, content, "queryClient.invalidateQueries({ queryKey: ['order', id] })")
	assert.Equal(t, 4, strings.Count(content, "queryKey: ['orderList']"))
	assert.Equal(t, 3, strings.Count(content, "toast.success("))
	assert.Equal(t, 3, strings.Count(content, "toast.error("))
}

func TestRender_ImportsMatchMaterializedPaths(t *testing.T) {
	for _, raw := range []string{"orders", "category", "userProfiles"} {
		name := models.Normalize(raw)

		hooks, err := Render(models.ArtifactDataHooks, name, models.NoClient())
		require.NoError(t, err)

		hooksDir := strings.TrimSuffix(RelativePath(models.ArtifactDataHooks, name), "/use"+name.Capitalized+".ts")
		actionsModule := StripSourceExt(RelativePath(models.ArtifactActionFunctions, name))
		typesModule := StripSourceExt(RelativePath(models.ArtifactTypeDecl, name))

		actionsImport := RelativeModule(RelativePath(models.ArtifactDataHooks, name), RelativePath(models.ArtifactActionFunctions, name))
		assert.Contains(t, hooks, "from '"+actionsImport+"'")
		assert.Equal(t, actionsModule, resolveModule(hooksDir, actionsImport))

		item, err := Render(models.ArtifactItemRoute, name, models.NoClient())
		require.NoError(t, err)
		itemDir := strings.TrimSuffix(RelativePath(models.ArtifactItemRoute, name), "/route.ts")
		typesImport := RelativeModule(RelativePath(models.ArtifactItemRoute, name), RelativePath(models.ArtifactTypeDecl, name))
		assert.Contains(t, item, "from '"+typesImport+"'")
		assert.Equal(t, typesModule, resolveModule(itemDir, typesImport))
	}
}

func TestRender_ActionFunctionsVariants(t *testing.T) {
	name := models.Normalize("orders")

	t.Run("direct calls", func(t *testing.T) {
		content, err := Render(models.ArtifactActionFunctions, name, models.NoClient())
		require.NoError(t, err)

		assert.Contains(t, content, "import axios from 'axios'")
		assert.NotContains(t, content, "import api from")
		assert.Contains(t, content, "axios.get('/api/order')")
		assert.Contains(t, content, "axios.get(`/api/order/${id}`)")
		assert.Equal(t, 2, strings.Count(content, "'Content-Type': 'application/json'"))
		assert.Contains(t, content, "from '../types/order'")
	})

	t.Run("new shared client", func(t *testing.T) {
		content, err := Render(models.ArtifactActionFunctions, name, models.NewClient())
		require.NoError(t, err)

		assert.Contains(t, content, "import api from '@/src/lib/api'")
		assert.NotContains(t, content, "import axios")
		assert.NotContains(t, content, "Content-Type")
		assert.Contains(t, content, "api.get('/order')")
		assert.Contains(t, content, "api.post('/order', data)")
		assert.Contains(t, content, "await api.delete(`/order/${id}`)")
	})

	t.Run("existing shared client", func(t *testing.T) {
		content, err := Render(models.ArtifactActionFunctions, name, models.ExistingClient("@/shared/http"))
		require.NoError(t, err)

		assert.Contains(t, content, "import api from '@/shared/http'")
		assert.NotContains(t, content, "/api/order")
	})
}

func TestRender_ClientConfig(t *testing.T) {
	content, err := Render(models.ArtifactClientConfig, models.Normalize("orders"), models.NewClient())
	require.NoError(t, err)

	assert.Contains(t, content, "const api = axios.create({\n  baseURL: '/api',")
	assert.Contains(t, content, "typeof window !== 'undefined' ? localStorage.getItem('token') : null")
	assert.Contains(t, content, "config.headers.Authorization = `Bearer ${token}`")
	assert.Contains(t, content, "export default api")
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := Render(models.ArtifactKind(99), models.Normalize("orders"), models.NoClient())
	assert.Error(t, err)
	assert.Equal(t, "", RelativePath(models.ArtifactKind(99), models.Normalize("orders")))
}

func TestRelativeModule(t *testing.T) {
	tests := []struct {
		from     string
		target   string
		expected string
	}{
		{"app/api/order/hooks/useOrder.ts", "app/api/order/actions/orderActions.ts", "../actions/orderActions"},
		{"app/api/order/[id]/route.ts", "app/api/order/types/order.ts", "../types/order"},
		{"app/api/order/route.ts", "app/api/order/types/order.ts", "./types/order"},
		{"lib/api.ts", "lib/http.ts", "./http"},
		{"app/page.tsx", "lib/api.ts", "../lib/api"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RelativeModule(tt.from, tt.target), "%s -> %s", tt.from, tt.target)
	}
}

// resolveModule applies a relative specifier to a directory
func resolveModule(dir, specifier string) string {
	parts := strings.Split(dir, "/")
	for _, seg := range strings.Split(specifier, "/") {
		switch seg {
		case ".":
		case "..":
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}
