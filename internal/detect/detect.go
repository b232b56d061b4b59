// Package detect classifies project source files by the role they play,
// using content heuristics rather than a full parse.
//
// The checks are deliberately approximate: a file that builds a client in an
// unusual way is missed, and a file that merely mentions a factory call in a
// string may be picked up. Callers treat the result as a suggestion that the
// operator confirms.
package detect

import (
	"strings"

	"github.com/toyz/nextcrud/internal/models"
)

// Predicate reports whether file content has a given property
type Predicate func(content string) bool

// factoryCallMarkers are the client factory invocations that count as a
// shared client being configured
var factoryCallMarkers = []string{
	"axios.create(",
	"ky.create(",
	"ky.extend(",
}

// clientNameHints are the fragments that make a default-exported identifier
// look like an HTTP client
var clientNameHints = []string{
	"api",
	"client",
	"http",
	"axios",
	"instance",
	"request",
	"fetcher",
}

// HasFactoryCall reports whether content invokes a known HTTP client factory
func HasFactoryCall(content string) bool {
	for _, marker := range factoryCallMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// IsClientLikeName reports whether an identifier looks like an HTTP client
func IsClientLikeName(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range clientNameHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// Detector runs the two client-instance checks against file content
type Detector struct {
	FactoryCall   Predicate
	DefaultExport Predicate
}

// NewDetector creates a detector with the default heuristics
func NewDetector() *Detector {
	return &Detector{
		FactoryCall:   HasFactoryCall,
		DefaultExport: HasClientDefaultExport,
	}
}

// Inspect evaluates content read from absolutePath
func (d *Detector) Inspect(absolutePath, content string) models.CandidateInstanceFile {
	return models.CandidateInstanceFile{
		AbsolutePath:          absolutePath,
		ContainsFactoryCall:   d.FactoryCall(content),
		ContainsDefaultExport: d.DefaultExport(content),
	}
}
