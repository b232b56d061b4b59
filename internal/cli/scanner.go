package cli

import (
	"path/filepath"

	"github.com/toyz/nextcrud/internal/detect"
	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/models"
	"github.com/toyz/nextcrud/internal/utils"
	"github.com/toyz/nextcrud/internal/utils/fileops"
)

// InstanceScanner searches a project tree for files that configure a shared
// HTTP client instance
type InstanceScanner struct {
	fileProcessor *utils.FileProcessor
	fileOps       *fileops.FileOps
	detector      *detect.Detector
}

// NewInstanceScanner creates a scanner with the default detection heuristics
func NewInstanceScanner() *InstanceScanner {
	return NewInstanceScannerWithDetector(detect.NewDetector())
}

// NewInstanceScannerWithDetector creates a scanner using the given detector
func NewInstanceScannerWithDetector(detector *detect.Detector) *InstanceScanner {
	return &InstanceScanner{
		fileProcessor: utils.NewFileProcessor(),
		fileOps:       fileops.NewFileOps(),
		detector:      detector,
	}
}

// Scan returns the qualifying candidates under rootDir in walk order.
// A missing root yields no candidates, and files that cannot be read are
// treated as non-qualifying.
func (s *InstanceScanner) Scan(rootDir string) ([]models.CandidateInstanceFile, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, errors.WrapWithOperation("resolve", "scan root "+rootDir, err)
	}

	files, err := s.fileProcessor.WalkSourceFiles(absRoot)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.CandidateInstanceFile, 0)
	for _, file := range files {
		content, err := s.fileOps.ReadFile(file)
		if err != nil {
			continue
		}

		candidate := s.detector.Inspect(file, content)
		if candidate.Qualifies() {
			candidates = append(candidates, candidate)
		}
	}

	return candidates, nil
}
