package cli

import (
	"path/filepath"

	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/models"
	"github.com/toyz/nextcrud/internal/templates"
)

// Plan renders every artifact for name and lays out where it goes under
// destDir. It has no side effects; the same inputs always give the same plan.
func Plan(name models.ResourceName, destDir string, ref models.ClientRef) (*models.GenerationPlan, error) {
	plan := &models.GenerationPlan{
		Resource:    name,
		DestDir:     destDir,
		Client:      ref,
		Directories: make([]string, 0, len(models.ResourceArtifacts)+1),
		Files:       make([]models.PlannedFile, 0, len(models.ResourceArtifacts)+1),
	}

	for _, rel := range templates.ResourceDirectories(name) {
		plan.Directories = append(plan.Directories, filepath.Join(destDir, filepath.FromSlash(rel)))
	}

	kinds := models.ResourceArtifacts
	if ref.Mode == models.ClientModeNewInstance {
		plan.Directories = append(plan.Directories, filepath.Join(destDir, filepath.Dir(filepath.FromSlash(templates.ClientConfigFile))))
		kinds = append([]models.ArtifactKind{models.ArtifactClientConfig}, kinds...)
	}

	for _, kind := range kinds {
		content, err := templates.Render(kind, name, ref)
		if err != nil {
			return nil, errors.WrapTemplateError(kind.String(), "render", err)
		}

		plan.Files = append(plan.Files, models.PlannedFile{
			Kind:    kind,
			Path:    filepath.Join(destDir, filepath.FromSlash(templates.RelativePath(kind, name))),
			Content: content,
		})
	}

	return plan, nil
}
