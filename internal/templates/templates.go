package templates

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/toyz/nextcrud/internal/errors"
	"github.com/toyz/nextcrud/internal/models"
)

const (
	// BaseURLEnv is read by the generated route handlers at runtime
	BaseURLEnv = "NEXT_PUBLIC_API_URL"
	// LocalBasePath is where the generated route handlers are mounted
	LocalBasePath = "/api"
	// TokenKey is the localStorage key the client interceptor reads
	TokenKey = "token"
)

// ArtifactData is the data passed to every artifact template
type ArtifactData struct {
	Resource      string // singular, lower-case resource name
	Capitalized   string // singular with an upper-case first letter
	TypesImport   string // relative module of the type declarations
	ActionsImport string // relative module of the action functions
	ClientImport  string // module exporting the shared client
	BaseURLEnv    string
	LocalBasePath string
	TokenKey      string
	FailureStatus int
}

// NewArtifactData builds template data for the artifact of the given kind.
// Relative imports are computed from the catalog layout so that every
// artifact references the exact path another artifact is written to.
func NewArtifactData(kind models.ArtifactKind, name models.ResourceName, client models.ClientRef) ArtifactData {
	var from string
	if pathOf, ok := artifactPaths[kind]; ok {
		from = pathOf(name)
	}
	return ArtifactData{
		Resource:      name.Singular,
		Capitalized:   name.Capitalized,
		TypesImport:   RelativeModule(from, typesPath(name)),
		ActionsImport: RelativeModule(from, actionsPath(name)),
		ClientImport:  client.ImportSpecifier,
		BaseURLEnv:    BaseURLEnv,
		LocalBasePath: LocalBasePath,
		TokenKey:      TokenKey,
		FailureStatus: http.StatusInternalServerError,
	}
}

// renderWith returns a Renderer executing the named template
func renderWith(templateName string, kind models.ArtifactKind) Renderer {
	return func(name models.ResourceName, client models.ClientRef) (string, error) {
		return executeTemplate(templateName, NewArtifactData(kind, name, client))
	}
}

// renderActions picks the shared-client or direct-call variant
func renderActions(name models.ResourceName, client models.ClientRef) (string, error) {
	templateName := ActionsDirectTemplate
	if client.UsesSharedClient() {
		templateName = ActionsSharedTemplate
	}
	return executeTemplate(templateName, NewArtifactData(models.ArtifactActionFunctions, name, client))
}

// executeTemplate executes a registry template with the given data
func executeTemplate(name string, data interface{}) (string, error) {
	tmpl, exists := DefaultTemplateRegistry.Get(name)
	if !exists {
		return "", errors.WrapTemplateError(name, "lookup", fmt.Errorf("template not registered"))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}

	return buf.String(), nil
}

func unknownArtifactError(kind models.ArtifactKind) error {
	return errors.Newf(errors.GenerationErrorCode, "no renderer registered for artifact %s", kind)
}
