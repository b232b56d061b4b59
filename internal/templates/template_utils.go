package templates

import (
	"path"
	"strings"
	"text/template"
)

// funcMap returns the helper functions available inside templates
func funcMap() template.FuncMap {
	return template.FuncMap{
		"listKey": ListQueryKey,
	}
}

// ListQueryKey returns the react-query cache key for a resource list
func ListQueryKey(resource string) string {
	return resource + "List"
}

// StripSourceExt removes a TypeScript/JavaScript source extension from p
func StripSourceExt(p string) string {
	ext := path.Ext(p)
	switch ext {
	case ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs", ".mts", ".cts":
		return strings.TrimSuffix(p, ext)
	}
	return p
}

// RelativeModule returns the relative module specifier to import target from
// a file at from. Both paths are slash-separated and relative to the same root.
func RelativeModule(from, target string) string {
	fromParts := splitPath(path.Dir(from))
	targetParts := splitPath(StripSourceExt(target))

	common := 0
	for common < len(fromParts) && common < len(targetParts)-1 && fromParts[common] == targetParts[common] {
		common++
	}

	var parts []string
	for i := common; i < len(fromParts); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, targetParts[common:]...)

	rel := strings.Join(parts, "/")
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}

func splitPath(p string) []string {
	p = path.Clean(p)
	if p == "." || p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
