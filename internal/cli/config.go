package cli

import "github.com/toyz/nextcrud/internal/utils"

// DefaultDestDir is offered when the operator does not name a destination
const DefaultDestDir = "./src"

// Config holds the configuration for a generation run
type Config struct {
	// DefaultDestDir is proposed by the destination prompt
	DefaultDestDir string

	// Level controls how much diagnostic output is printed
	Level utils.DiagnosticLevel
}

// DefaultConfig returns the configuration used by the command line
func DefaultConfig() Config {
	return Config{
		DefaultDestDir: DefaultDestDir,
		Level:          utils.DiagnosticInfo,
	}
}
