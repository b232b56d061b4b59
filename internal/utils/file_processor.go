package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileProcessor provides utilities for walking a project tree
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	SkipErrors      bool
}

// SourceExtensions are the file extensions treated as TypeScript/JavaScript source
var SourceExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
	".mts": true,
	".cts": true,
}

// SourceFileFilter filters for TypeScript/JavaScript source files, excluding
// declaration files
func SourceFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}

		name := info.Name()
		if strings.HasSuffix(name, ".d.ts") || strings.HasSuffix(name, ".d.mts") || strings.HasSuffix(name, ".d.cts") {
			return false
		}
		return SourceExtensions[filepath.Ext(name)]
	}
}

// DefaultDirectoryFilter skips dependency, build and VCS directories
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"node_modules":     true,
		"bower_components": true,
		"vendor":           true,
		"dist":             true,
		"build":            true,
		"out":              true,
		"coverage":         true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden directories (.git, .next, .turbo, ...)
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// fileInfoDirEntry adapts os.FileInfo to os.DirEntry
type fileInfoDirEntry struct {
	info os.FileInfo
}

func (f fileInfoDirEntry) Name() string               { return f.info.Name() }
func (f fileInfoDirEntry) IsDir() bool                { return f.info.IsDir() }
func (f fileInfoDirEntry) Type() os.FileMode          { return f.info.Mode().Type() }
func (f fileInfoDirEntry) Info() (os.FileInfo, error) { return f.info, nil }

// WalkFiles walks through files in a directory tree with filtering.
// The root itself is never rejected by the directory filter.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		dirEntry := fileInfoDirEntry{info: info}

		if info.IsDir() {
			if path != rootDir && options.DirectoryFilter != nil && !options.DirectoryFilter(path, dirEntry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, dirEntry) {
			matchedFiles = append(matchedFiles, path)
		}

		return nil
	})

	return matchedFiles, err
}

// WalkSourceFiles returns every source file under rootDir using the default
// filters. A missing root yields no files and no error.
func (fp *FileProcessor) WalkSourceFiles(rootDir string) ([]string, error) {
	return fp.WalkFiles(rootDir, FileWalkOptions{
		FileFilter:      SourceFileFilter(),
		DirectoryFilter: DefaultDirectoryFilter(),
		SkipErrors:      true,
	})
}
