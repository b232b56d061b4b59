package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/utils/fileops"
)

const (
	// DefaultAliasPrefix is the path alias most Next.js projects map to their root
	DefaultAliasPrefix = "@"

	// DefaultSourceRoot is the conventional source directory name
	DefaultSourceRoot = "src"
)

// projectConfigFiles are checked in order in every directory
var projectConfigFiles = []string{"tsconfig.json", "jsconfig.json"}

// AliasConfig describes the module alias convention of the target project
type AliasConfig struct {
	Prefix     string // alias token, e.g. "@"
	SourceRoot string // directory name the alias may include, e.g. "src"

	// ProjectRoot is the directory holding tsconfig.json or jsconfig.json.
	// The source root is only searched for below it.
	ProjectRoot string

	// AliasRoot is the absolute directory Prefix maps to in the project
	// config. Empty when the mapping is unknown.
	AliasRoot string
}

// DefaultAliasConfig returns the "@" alias with a "src" source root
func DefaultAliasConfig() AliasConfig {
	return AliasConfig{
		Prefix:     DefaultAliasPrefix,
		SourceRoot: DefaultSourceRoot,
	}
}

type projectConfig struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// LoadAliasConfig looks for tsconfig.json or jsconfig.json in dir and its
// parents. The first file found decides: its first compilerOptions.paths key
// ending in "/*" (in sorted order) becomes the prefix, and the key's first
// wildcard target becomes the alias root. When no file exists the defaults are
// returned. When the file cannot be decoded the defaults, bounded to the
// file's directory, are returned together with the error.
func LoadAliasConfig(dir string) (AliasConfig, error) {
	config := DefaultAliasConfig()

	configPath, found := findProjectConfig(dir)
	if !found {
		return config, nil
	}
	config.ProjectRoot = filepath.Dir(configPath)

	data, err := fileops.NewFileOps().ReadFile(configPath)
	if err != nil {
		return config, errors.WrapConfigurationError(configPath, "read", err)
	}

	var parsed projectConfig
	if err := json.Unmarshal([]byte(data), &parsed); err != nil {
		return config, errors.WrapConfigurationError(configPath, "parse", err).
			WithSuggestions("Comments and trailing commas are not supported; the default '@' alias is used")
	}

	prefix, target, ok := aliasFromPaths(parsed.CompilerOptions.Paths)
	if !ok {
		return config, nil
	}
	config.Prefix = prefix

	if target != "" {
		base := filepath.Join(config.ProjectRoot, filepath.FromSlash(parsed.CompilerOptions.BaseURL))
		config.AliasRoot = filepath.Join(base, filepath.FromSlash(target))
	}
	return config, nil
}

func findProjectConfig(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(current, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// aliasFromPaths returns the prefix of the first wildcard key and the
// directory its first wildcard target points at ("." for "./*" or "*")
func aliasFromPaths(paths map[string][]string) (string, string, bool) {
	keys := make([]string, 0, len(paths))
	for key := range paths {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prefix, ok := strings.CutSuffix(key, "/*")
		if !ok || prefix == "" {
			continue
		}

		for _, target := range paths[key] {
			if target == "*" {
				return prefix, ".", true
			}
			if dir, ok := strings.CutSuffix(target, "/*"); ok {
				dir = strings.TrimPrefix(dir, "./")
				if dir == "" {
					dir = "."
				}
				return prefix, dir, true
			}
		}
		return prefix, "", true
	}
	return "", "", false
}

// ImportResolver turns the location of a source file into a module specifier
// using the project's alias convention
type ImportResolver struct {
	config AliasConfig
}

// NewImportResolver creates a resolver for the given alias convention
func NewImportResolver(config AliasConfig) *ImportResolver {
	if config.Prefix == "" {
		config.Prefix = DefaultAliasPrefix
	}
	return &ImportResolver{config: config}
}

// Config returns the alias convention in use
func (r *ImportResolver) Config() AliasConfig {
	return r.config
}

// Resolve returns the alias specifier for absoluteFilePath. The extension is
// dropped and the path always starts with "/" after the alias.
//
// When the alias root is known and contains the file, the path is taken from
// the alias root. Otherwise it is taken from baseDir, and the alias gains the
// source root segments when baseDir is inside a source root directory of the
// project, e.g. "/project/app/shared/http.ts" under "/project/app" becomes
// "@/shared/http".
func (r *ImportResolver) Resolve(absoluteFilePath, baseDir string) (string, error) {
	absFile, err := filepath.Abs(absoluteFilePath)
	if err != nil {
		return "", errors.WrapWithOperation("resolve", "import path for "+absoluteFilePath, err)
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", errors.WrapWithOperation("resolve", "base directory "+baseDir, err)
	}
	withoutExt := strings.TrimSuffix(absFile, filepath.Ext(absFile))

	if r.config.AliasRoot != "" {
		if rel, ok := relativeWithin(r.config.AliasRoot, withoutExt); ok {
			return r.config.Prefix + rel, nil
		}
	}

	rel, err := filepath.Rel(absBase, withoutExt)
	if err != nil {
		return "", errors.WrapWithOperation("resolve", "import path for "+absoluteFilePath, err)
	}

	return r.aliasFor(absBase) + leadingSlash(rel), nil
}

// aliasFor includes the source root and everything below it when baseDir is
// nested under a directory with the source root's name. Only the segments
// below the project root are searched; without a project root only baseDir
// itself is considered.
func (r *ImportResolver) aliasFor(baseDir string) string {
	if r.config.SourceRoot == "" {
		return r.config.Prefix
	}

	segments := []string{filepath.Base(baseDir)}
	if r.config.ProjectRoot != "" {
		if rel, ok := relativeWithin(r.config.ProjectRoot, baseDir); ok {
			segments = strings.Split(strings.TrimPrefix(rel, "/"), "/")
		}
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == r.config.SourceRoot {
			return r.config.Prefix + "/" + strings.Join(segments[i:], "/")
		}
	}
	return r.config.Prefix
}

// relativeWithin returns target relative to root with a leading "/", or false
// when target is outside root
func relativeWithin(root, target string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return leadingSlash(rel), true
}

func leadingSlash(rel string) string {
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return ""
	}
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return rel
}
