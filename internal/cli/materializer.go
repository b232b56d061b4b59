package cli

import (
	"fmt"

	"github.com/toyz/nextcrud/internal/models"
	"github.com/toyz/nextcrud/internal/utils"
	"github.com/toyz/nextcrud/internal/utils/fileops"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Materializer writes a generation plan to disk
type Materializer struct {
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

// NewMaterializer creates a materializer reporting through diagnostics
func NewMaterializer(diagnostics *utils.DiagnosticSystem) *Materializer {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Materializer{
		fileOps:     fileops.NewFileOps(),
		diagnostics: diagnostics,
	}
}

// Materialize creates the plan's directories when absent and writes every
// file, replacing existing content. The first failure stops the run; whatever
// was written before it stays on disk.
func (m *Materializer) Materialize(plan *models.GenerationPlan) (*models.MaterializeReport, error) {
	report := &models.MaterializeReport{
		CreatedDirectories: make([]string, 0),
		WrittenFiles:       make([]string, 0, len(plan.Files)),
	}

	for _, dir := range plan.Directories {
		created, err := m.fileOps.EnsureDir(dir, dirPerm)
		if err != nil {
			return report, err
		}
		if created {
			report.CreatedDirectories = append(report.CreatedDirectories, dir)
			m.diagnostics.PhaseItem(fmt.Sprintf("Directory created: %s", dir))
		} else {
			m.diagnostics.Debug("Directory exists: %s", dir)
		}
	}

	for _, file := range plan.Files {
		m.diagnostics.PhaseProgress(fmt.Sprintf("Writing %s", file.Path))
		if err := m.fileOps.WriteFile(file.Path, []byte(file.Content), filePerm); err != nil {
			return report, err
		}
		report.WrittenFiles = append(report.WrittenFiles, file.Path)
		m.diagnostics.Debug("Wrote %s (%s)", file.Path, file.Kind)
	}

	return report, nil
}

// WiringNote describes how the generated actions reach the backend
func WiringNote(ref models.ClientRef, clientConfigPath string) string {
	switch ref.Mode {
	case models.ClientModeNewInstance:
		return fmt.Sprintf("Shared axios instance configured at %s; the actions import it from %s.", clientConfigPath, ref.ImportSpecifier)
	case models.ClientModeExistingInstance:
		return fmt.Sprintf("The actions reuse the existing client instance imported from %s.", ref.ImportSpecifier)
	default:
		return "The actions use plain axios calls with headers passed on each request."
	}
}
