package templates

import (
	"embed"
	"text/template"

	"github.com/toyz/nextcrud/internal/errors"
)

//go:embed files/*.tmpl
var templateFS embed.FS

// Template names as embedded under files/
const (
	CollectionRouteTemplate = "collection_route.ts.tmpl"
	ItemRouteTemplate       = "item_route.ts.tmpl"
	TypesTemplate           = "types.ts.tmpl"
	SchemasTemplate         = "schemas.ts.tmpl"
	HooksTemplate           = "hooks.ts.tmpl"
	ActionsDirectTemplate   = "actions_direct.ts.tmpl"
	ActionsSharedTemplate   = "actions_shared.ts.tmpl"
	ClientConfigTemplate    = "client_config.ts.tmpl"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	set *template.Template
}

// NewTemplateRegistry parses every embedded template into one set so the
// shared partials (upstream-error) are visible to all artifacts
func NewTemplateRegistry() (*TemplateRegistry, error) {
	set, err := template.New("nextcrud").Funcs(funcMap()).ParseFS(templateFS, "files/*.tmpl")
	if err != nil {
		return nil, errors.WrapTemplateError("files/*.tmpl", "parse", err)
	}
	return &TemplateRegistry{set: set}, nil
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (*template.Template, bool) {
	tmpl := tr.set.Lookup(name)
	return tmpl, tmpl != nil
}

// Names returns the names of every artifact template in the registry
func (tr *TemplateRegistry) Names() []string {
	return []string{
		CollectionRouteTemplate,
		ItemRouteTemplate,
		TypesTemplate,
		SchemasTemplate,
		HooksTemplate,
		ActionsDirectTemplate,
		ActionsSharedTemplate,
		ClientConfigTemplate,
	}
}

func mustNewTemplateRegistry() *TemplateRegistry {
	registry, err := NewTemplateRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Global template registry instance
var DefaultTemplateRegistry = mustNewTemplateRegistry()
