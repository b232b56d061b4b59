// Command nextcrud scaffolds CRUD route handlers, types, schemas, hooks and
// actions for a resource in a Next.js project.
//
// Usage:
//
//	nextcrud [--verbose | --quiet]
//	nextcrud version
package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyz/nextcrud/internal/cli"
	"github.com/toyz/nextcrud/internal/utils"
	"github.com/toyz/nextcrud/internal/version"
)

type rootOptions struct {
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "nextcrud",
		Short: "CRUD scaffolding generator for Next.js",
		Long: `nextcrud asks for a resource name and a destination directory and generates:
  - collection and item API route handlers
  - TypeScript types and zod validation schemas
  - react-query hooks and axios actions

When a configured axios or ky instance is found under the destination it can be
reused; otherwise a new shared instance can be generated in lib/api.ts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only show errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Version = version.GetVersionString()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newDiagnostics(opts *rootOptions, out, errOut io.Writer) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case opts.quiet:
		level = utils.DiagnosticError
	case opts.verbose:
		level = utils.DiagnosticVerbose
	}

	_, isFile := out.(*os.File)
	return utils.NewDiagnosticSystemWithWriters(level, out, errOut, isFile && utils.ShouldUseColors())
}

func runGenerate(ctx context.Context, opts *rootOptions, in io.Reader, out, errOut io.Writer) error {
	diagnostics := newDiagnostics(opts, out, errOut)

	config := cli.DefaultConfig()
	generator := cli.NewGenerator(config, diagnostics)
	if err := generator.RunInteractive(ctx, in, out); err != nil {
		return err
	}

	if opts.verbose {
		summary := generator.GetSummary()
		diagnostics.Summary("Generation Complete!", map[string]interface{}{
			"Resource":            summary.Resource,
			"Client mode":         summary.ClientMode.String(),
			"Directories created": summary.DirectoriesCreated,
			"Files written":       summary.FilesWritten,
		})
	}
	return nil
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		utils.NewQuietDiagnostics().Error("%s", cli.FormatError(err))
		os.Exit(1)
	}
}
