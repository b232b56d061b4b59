package cli

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/models"
	"github.com/toyz/nextcrud/internal/utils"
)

func newTestMaterializer() (*Materializer, *bytes.Buffer) {
	var out bytes.Buffer
	diagnostics := utils.NewDiagnosticSystemWithWriters(utils.DiagnosticInfo, &out, &out, false)
	return NewMaterializer(diagnostics), &out
}

func TestMaterializer_Materialize(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "app")
	plan, err := Plan(models.Normalize("orders"), destDir, models.NoClient())
	require.NoError(t, err)

	materializer, out := newTestMaterializer()
	report, err := materializer.Materialize(plan)
	require.NoError(t, err)

	assert.Equal(t, plan.Directories, report.CreatedDirectories)
	require.Len(t, report.WrittenFiles, len(plan.Files))
	for _, f := range plan.Files {
		content, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(content))
	}

	assert.Contains(t, out.String(), "✓ Directory created: "+plan.Directories[0])
	assert.Contains(t, out.String(), "✏ Writing "+plan.Files[0].Path)
}

func TestMaterializer_IsIdempotentForDirectories(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "src")
	plan, err := Plan(models.Normalize("orders"), destDir, models.NewClient())
	require.NoError(t, err)

	materializer, _ := newTestMaterializer()
	_, err = materializer.Materialize(plan)
	require.NoError(t, err)

	report, err := materializer.Materialize(plan)
	require.NoError(t, err)
	assert.Empty(t, report.CreatedDirectories)
	assert.Len(t, report.WrittenFiles, len(plan.Files))
}

func TestMaterializer_OnlyReportsNewDirectories(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "src")
	require.NoError(t, os.MkdirAll(filepath.Join(destDir, "lib"), 0755))

	plan, err := Plan(models.Normalize("orders"), destDir, models.NewClient())
	require.NoError(t, err)

	materializer, _ := newTestMaterializer()
	report, err := materializer.Materialize(plan)
	require.NoError(t, err)

	assert.Len(t, report.CreatedDirectories, len(plan.Directories)-1)
	assert.NotContains(t, report.CreatedDirectories, filepath.Join(destDir, "lib"))
}

func TestMaterializer_OverwritesExistingFiles(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "src")
	plan, err := Plan(models.Normalize("orders"), destDir, models.NoClient())
	require.NoError(t, err)

	target, ok := plan.File(models.ArtifactTypeDecl)
	require.True(t, ok)
	require.NoError(t, os.MkdirAll(filepath.Dir(target.Path), 0755))
	require.NoError(t, os.WriteFile(target.Path, []byte("export interface Order { id: string; total: number }\n// edited by hand\n"), 0644))

	materializer, _ := newTestMaterializer()
	_, err = materializer.Materialize(plan)
	require.NoError(t, err)

	content, err := os.ReadFile(target.Path)
	require.NoError(t, err)
	assert.Equal(t, target.Content, string(content))

	entries, err := os.ReadDir(filepath.Dir(target.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMaterializer_StopsOnFirstFailure(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "src")
	plan, err := Plan(models.Normalize("orders"), destDir, models.NoClient())
	require.NoError(t, err)

	// A regular file where the types directory belongs
	blocked := filepath.Join(destDir, "app", "api", "order", "types")
	require.NoError(t, os.MkdirAll(filepath.Dir(blocked), 0755))
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	materializer, _ := newTestMaterializer()
	report, err := materializer.Materialize(plan)
	require.Error(t, err)
	assert.Empty(t, report.WrittenFiles)

	var coded errors.CodedError
	require.True(t, stderrors.As(err, &coded))
	assert.Equal(t, errors.FileSystemErrorCode, coded.ErrorCode())
	assert.Equal(t, blocked, coded.Context()["path"])
}

func TestWiringNote(t *testing.T) {
	assert.Contains(t, WiringNote(models.NoClient(), ""), "plain axios")
	assert.Contains(t, WiringNote(models.NewClient(), "src/lib/api.ts"), "src/lib/api.ts")
	assert.Contains(t, WiringNote(models.NewClient(), "src/lib/api.ts"), "@/src/lib/api")
	assert.Contains(t, WiringNote(models.ExistingClient("@/shared/http"), ""), "@/shared/http")
}
