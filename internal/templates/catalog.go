package templates

import (
	"path"

	"github.com/toyz/nextcrud/internal/models"
)

// Layout constants shared by every artifact path
const (
	APIRoot          = "app/api"
	ItemSegment      = "[id]"
	ClientConfigFile = "lib/api.ts"
)

// Renderer produces the source text of one artifact. Renderers that do not
// depend on the client reference ignore it.
type Renderer func(name models.ResourceName, client models.ClientRef) (string, error)

// ArtifactSpec describes one entry of the template catalog
type ArtifactSpec struct {
	Kind         models.ArtifactKind
	RelativePath func(name models.ResourceName) string
	Render       Renderer
}

// artifactPaths holds the layout of every artifact. Renderers compute their
// relative imports from it and must not read Catalog.
var artifactPaths = map[models.ArtifactKind]func(models.ResourceName) string{
	models.ArtifactCollectionRoute:  collectionRoutePath,
	models.ArtifactItemRoute:        itemRoutePath,
	models.ArtifactTypeDecl:         typesPath,
	models.ArtifactValidationSchema: schemasPath,
	models.ArtifactDataHooks:        hooksPath,
	models.ArtifactActionFunctions:  actionsPath,
	models.ArtifactClientConfig:     clientConfigPath,
}

// Catalog maps every artifact kind to its spec. It is fixed at build time.
var Catalog = map[models.ArtifactKind]ArtifactSpec{
	models.ArtifactCollectionRoute: {
		Kind:         models.ArtifactCollectionRoute,
		RelativePath: collectionRoutePath,
		Render:       renderWith(CollectionRouteTemplate, models.ArtifactCollectionRoute),
	},
	models.ArtifactItemRoute: {
		Kind:         models.ArtifactItemRoute,
		RelativePath: itemRoutePath,
		Render:       renderWith(ItemRouteTemplate, models.ArtifactItemRoute),
	},
	models.ArtifactTypeDecl: {
		Kind:         models.ArtifactTypeDecl,
		RelativePath: typesPath,
		Render:       renderWith(TypesTemplate, models.ArtifactTypeDecl),
	},
	models.ArtifactValidationSchema: {
		Kind:         models.ArtifactValidationSchema,
		RelativePath: schemasPath,
		Render:       renderWith(SchemasTemplate, models.ArtifactValidationSchema),
	},
	models.ArtifactDataHooks: {
		Kind:         models.ArtifactDataHooks,
		RelativePath: hooksPath,
		Render:       renderWith(HooksTemplate, models.ArtifactDataHooks),
	},
	models.ArtifactActionFunctions: {
		Kind:         models.ArtifactActionFunctions,
		RelativePath: actionsPath,
		Render:       renderActions,
	},
	models.ArtifactClientConfig: {
		Kind:         models.ArtifactClientConfig,
		RelativePath: clientConfigPath,
		Render:       renderWith(ClientConfigTemplate, models.ArtifactClientConfig),
	},
}

// Lookup returns the catalog entry for kind
func Lookup(kind models.ArtifactKind) (ArtifactSpec, bool) {
	spec, ok := Catalog[kind]
	return spec, ok
}

// Render renders a single artifact through the catalog
func Render(kind models.ArtifactKind, name models.ResourceName, client models.ClientRef) (string, error) {
	spec, ok := Lookup(kind)
	if !ok {
		return "", unknownArtifactError(kind)
	}
	return spec.Render(name, client)
}

// RelativePath returns where kind is materialized, relative to the destination root
func RelativePath(kind models.ArtifactKind, name models.ResourceName) string {
	spec, ok := Lookup(kind)
	if !ok {
		return ""
	}
	return spec.RelativePath(name)
}

// ResourceDir is the API directory of a resource, relative to the destination root
func ResourceDir(name models.ResourceName) string {
	return path.Join(APIRoot, name.Singular)
}

// ResourceDirectories lists the directories every resource needs, relative to
// the destination root, parents first
func ResourceDirectories(name models.ResourceName) []string {
	root := ResourceDir(name)
	return []string{
		root,
		path.Join(root, ItemSegment),
		path.Join(root, "types"),
		path.Join(root, "schemas"),
		path.Join(root, "hooks"),
		path.Join(root, "actions"),
	}
}

func clientConfigPath(models.ResourceName) string {
	return ClientConfigFile
}

func collectionRoutePath(name models.ResourceName) string {
	return path.Join(ResourceDir(name), "route.ts")
}

func itemRoutePath(name models.ResourceName) string {
	return path.Join(ResourceDir(name), ItemSegment, "route.ts")
}

func typesPath(name models.ResourceName) string {
	return path.Join(ResourceDir(name), "types", name.Singular+".ts")
}

func schemasPath(name models.ResourceName) string {
	return path.Join(ResourceDir(name), "schemas", name.Singular+"Schemas.ts")
}

func hooksPath(name models.ResourceName) string {
	return path.Join(ResourceDir(name), "hooks", "use"+name.Capitalized+".ts")
}

func actionsPath(name models.ResourceName) string {
	return path.Join(ResourceDir(name), "actions", name.Singular+"Actions.ts")
}
