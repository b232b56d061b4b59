package fileops

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileOps provides a unified interface for common file operations
// combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// ReadFile reads a file and returns its contents as a string
func (fo *FileOps) ReadFile(filePath string) (string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(filePath, err)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	return string(content), nil
}

// EnsureDir creates dirPath and any missing parents. It reports whether the
// directory had to be created.
func (fo *FileOps) EnsureDir(dirPath string, perm os.FileMode) (bool, error) {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dirPath)
	if err != nil {
		return false, fo.errorWrapper.WrapDirectoryCreateError(dirPath, err)
	}

	info, err := os.Stat(cleanPath)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fo.errorWrapper.WrapDirectoryCreateError(cleanPath, errors.New("path exists and is not a directory"))
	case !os.IsNotExist(err):
		return false, fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}

	if err := os.MkdirAll(cleanPath, perm); err != nil {
		return false, fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}
	return true, nil
}

// WriteFile replaces filePath with content. The data is written to a
// uniquely named sibling first and renamed over the target, so the target
// either keeps its old content or holds the complete new content.
func (fo *FileOps) WriteFile(filePath string, content []byte, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return fo.errorWrapper.WrapFileWriteError(filePath, err)
	}

	tmpPath := filepath.Join(filepath.Dir(cleanPath), "."+filepath.Base(cleanPath)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	if err := os.Rename(tmpPath, cleanPath); err != nil {
		_ = os.Remove(tmpPath)
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	return nil
}
