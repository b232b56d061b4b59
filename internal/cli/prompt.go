package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/models"
	"github.com/toyz/nextcrud/internal/utils"
)

// affirmativeAnswers are accepted as "yes", case-insensitively
var affirmativeAnswers = map[string]bool{
	"y":   true,
	"yes": true,
	"s":   true,
	"sim": true,
}

// IsAffirmative reports whether answer means yes
func IsAffirmative(answer string) bool {
	return affirmativeAnswers[strings.ToLower(strings.TrimSpace(answer))]
}

// Prompter asks the operator one question at a time
type Prompter struct {
	reader      *bufio.Reader
	out         io.Writer
	scanner     *InstanceScanner
	diagnostics *utils.DiagnosticSystem
	config      Config
}

// NewPrompter creates a prompter reading answers from in and writing
// questions to out
func NewPrompter(in io.Reader, out io.Writer, scanner *InstanceScanner, diagnostics *utils.DiagnosticSystem, config Config) *Prompter {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystemWithWriters(utils.DiagnosticSilent, out, out, false)
	}
	if config.DefaultDestDir == "" {
		config.DefaultDestDir = DefaultDestDir
	}
	return &Prompter{
		reader:      bufio.NewReader(in),
		out:         out,
		scanner:     scanner,
		diagnostics: diagnostics,
		config:      config,
	}
}

// Ask prints question and returns the trimmed answer, or defaultAnswer when
// the answer is empty. End of input counts as an empty answer.
func (p *Prompter) Ask(question, defaultAnswer string) (string, error) {
	if defaultAnswer != "" {
		fmt.Fprintf(p.out, "%s (%s): ", question, defaultAnswer)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.InputErrorCode, "failed to read answer", err).
			WithContext("question", question)
	}
	if err == io.EOF {
		fmt.Fprintln(p.out)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return defaultAnswer, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := p.Ask(fmt.Sprintf("%s [%s]", question, hint), "")
	if err != nil {
		return false, err
	}
	if answer == "" {
		return defaultYes, nil
	}
	return IsAffirmative(answer), nil
}

// Collect runs the whole question sequence and returns the resulting input
func (p *Prompter) Collect(ctx context.Context) (models.GenerationInput, error) {
	var input models.GenerationInput

	name, err := p.Ask("Resource name (e.g. users, products)", "")
	if err != nil {
		return input, err
	}
	input.ResourceName = name

	destDir, err := p.Ask("Destination directory", p.config.DefaultDestDir)
	if err != nil {
		return input, err
	}
	input.DestDir = destDir

	if err := ctx.Err(); err != nil {
		return input, err
	}

	client, err := p.chooseClient(destDir)
	if err != nil {
		return input, err
	}
	input.Client = client

	return input, nil
}

// chooseClient offers detected client instances for reuse and otherwise asks
// whether a new shared client should be generated
func (p *Prompter) chooseClient(destDir string) (models.ClientRef, error) {
	candidates, err := p.scanner.Scan(destDir)
	if err != nil {
		return models.ClientRef{}, err
	}

	if len(candidates) > 0 {
		ref, decided, err := p.chooseExisting(destDir, candidates)
		if err != nil || decided {
			return ref, err
		}
	}

	create, err := p.Confirm("Create a configured axios instance?", false)
	if err != nil {
		return models.ClientRef{}, err
	}
	if create {
		return models.NewClient(), nil
	}
	return models.NoClient(), nil
}

// chooseExisting returns decided=false when the operator declines reuse
func (p *Prompter) chooseExisting(destDir string, candidates []models.CandidateInstanceFile) (models.ClientRef, bool, error) {
	fmt.Fprintf(p.out, "Found %d existing client instance(s):\n", len(candidates))
	for i, candidate := range candidates {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, displayPath(destDir, candidate.AbsolutePath))
	}

	reuse, err := p.Confirm("Reuse an existing client instance?", false)
	if err != nil || !reuse {
		return models.ClientRef{}, false, err
	}

	selected := candidates[0]
	if len(candidates) > 1 {
		answer, err := p.Ask(fmt.Sprintf("Which instance? (1-%d)", len(candidates)), "")
		if err != nil {
			return models.ClientRef{}, false, err
		}
		index, convErr := strconv.Atoi(answer)
		if convErr != nil || index < 1 || index > len(candidates) {
			p.diagnostics.Warn("Invalid selection %q, a new client instance will be created", answer)
			return models.NewClient(), true, nil
		}
		selected = candidates[index-1]
	}

	aliasConfig, err := LoadAliasConfig(destDir)
	if err != nil {
		p.diagnostics.Warn("%v", err)
	}

	proposed, err := NewImportResolver(aliasConfig).Resolve(selected.AbsolutePath, destDir)
	if err != nil {
		return models.ClientRef{}, false, err
	}

	specifier, err := p.Ask("Import path for the client instance", proposed)
	if err != nil {
		return models.ClientRef{}, false, err
	}
	return models.ExistingClient(specifier), true, nil
}

func displayPath(baseDir, path string) string {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(absBase, path)
	if err != nil {
		return path
	}
	return rel
}
