package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/models"
	"github.com/toyz/nextcrud/internal/templates"
	"github.com/toyz/nextcrud/internal/utils"
)

// GenerationSummary contains summary information about a generation run
type GenerationSummary struct {
	Resource           string
	ClientMode         models.ClientMode
	DirectoriesCreated int
	FilesWritten       int
	Duration           time.Duration
}

// Generator coordinates the prompt flow, planning and materialization
type Generator struct {
	config       Config
	scanner      *InstanceScanner
	materializer *Materializer
	diagnostics  *utils.DiagnosticSystem
	summary      GenerationSummary
}

// NewGenerator creates a generator reporting through diagnostics
func NewGenerator(config Config, diagnostics *utils.DiagnosticSystem) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(config.Level)
	}
	return &Generator{
		config:       config,
		scanner:      NewInstanceScanner(),
		materializer: NewMaterializer(diagnostics),
		diagnostics:  diagnostics,
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// RunInteractive asks the operator for the generation input on in/out and
// then generates the resource
func (g *Generator) RunInteractive(ctx context.Context, in io.Reader, out io.Writer) error {
	g.diagnostics.Section("nextcrud - CRUD generator for Next.js")

	prompter := NewPrompter(in, out, g.scanner, g.diagnostics, g.config)
	input, err := prompter.Collect(ctx)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeInput,
			Message: fmt.Sprintf("Failed to collect input: %v", err),
			Cause:   err,
		}
	}

	_, err = g.Generate(ctx, input)
	return err
}

// Generate plans and materializes every artifact for input
func (g *Generator) Generate(ctx context.Context, input models.GenerationInput) (*models.MaterializeReport, error) {
	startTime := time.Now()

	name := models.Normalize(input.ResourceName)
	if name.IsEmpty() {
		g.diagnostics.Warn("Resource name is empty; files will be generated with empty names")
	}
	g.diagnostics.Debug("Resource %q normalized to %q (%s)", name.Raw, name.Singular, name.Capitalized)

	plan, err := Plan(name, input.DestDir, input.Client)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:        models.ErrorTypeGeneration,
			Message:     fmt.Sprintf("Failed to render artifacts: %v", err),
			Cause:       err,
			Suggestions: suggestionsOf(err),
			Context: map[string]interface{}{
				"resource": name.Singular,
			},
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.diagnostics.PhaseHeader(fmt.Sprintf("Generating %s", name.Capitalized))
	report, err := g.materializer.Materialize(plan)
	if err != nil {
		return report, &models.GeneratorError{
			Type:        models.ErrorTypeFileSystem,
			File:        failedPathOf(err),
			Message:     fmt.Sprintf("Failed to write generated files: %v", err),
			Cause:       err,
			Suggestions: suggestionsOf(err),
			Context: map[string]interface{}{
				"resource":    name.Singular,
				"destination": input.DestDir,
			},
		}
	}

	g.summary = GenerationSummary{
		Resource:           name.Capitalized,
		ClientMode:         input.Client.Mode,
		DirectoriesCreated: len(report.CreatedDirectories),
		FilesWritten:       len(report.WrittenFiles),
		Duration:           time.Since(startTime),
	}

	g.diagnostics.GenerationComplete(name.Capitalized)
	g.diagnostics.Info("%s", WiringNote(input.Client, filepath.Join(input.DestDir, filepath.FromSlash(templates.ClientConfigFile))))
	g.diagnostics.Verbose("Generation finished in %v", g.summary.Duration.Round(time.Millisecond))

	return report, nil
}

func suggestionsOf(err error) []string {
	var coded errors.CodedError
	if stderrors.As(err, &coded) {
		return coded.Suggestions()
	}
	return nil
}

// failedPathOf returns the path a file system error was raised for, if any
func failedPathOf(err error) string {
	var coded errors.CodedError
	if stderrors.As(err, &coded) {
		if path, ok := coded.Context()["path"].(string); ok {
			return path
		}
	}
	return ""
}

// FormatError renders err with any suggestions it carries, one per line
func FormatError(err error) string {
	var genErr *models.GeneratorError
	if stderrors.As(err, &genErr) {
		var b strings.Builder
		b.WriteString(genErr.Error())
		for _, hint := range genErr.Suggestions {
			b.WriteString("\n  - ")
			b.WriteString(hint)
		}
		return b.String()
	}

	var coded errors.CodedError
	if stderrors.As(err, &coded) {
		return errors.Format(coded)
	}
	return err.Error()
}
