package models

// ClientMode selects how generated network calls reach the backend
type ClientMode int

const (
	// ClientModeNone issues calls directly through axios
	ClientModeNone ClientMode = iota
	// ClientModeNewInstance generates a shared client config and routes calls through it
	ClientModeNewInstance
	// ClientModeExistingInstance routes calls through a client already present in the project
	ClientModeExistingInstance
)

// String returns the string representation of the client mode
func (m ClientMode) String() string {
	switch m {
	case ClientModeNewInstance:
		return "new-instance"
	case ClientModeExistingInstance:
		return "existing-instance"
	default:
		return "none"
	}
}

// DefaultClientImport is the alias under which a newly generated shared
// client is imported by the actions module.
const DefaultClientImport = "@/src/lib/api"

// ClientRef is the operator's decision on shared client wiring
type ClientRef struct {
	Mode            ClientMode
	ImportSpecifier string // empty for ClientModeNone
}

// NoClient returns a ClientRef for direct axios calls
func NoClient() ClientRef {
	return ClientRef{Mode: ClientModeNone}
}

// NewClient returns a ClientRef for a freshly generated shared client
func NewClient() ClientRef {
	return ClientRef{Mode: ClientModeNewInstance, ImportSpecifier: DefaultClientImport}
}

// ExistingClient returns a ClientRef pointing at a client found in the project
func ExistingClient(importSpecifier string) ClientRef {
	return ClientRef{Mode: ClientModeExistingInstance, ImportSpecifier: importSpecifier}
}

// UsesSharedClient reports whether actions go through a shared client object
func (c ClientRef) UsesSharedClient() bool {
	return c.Mode == ClientModeNewInstance || c.Mode == ClientModeExistingInstance
}

// CandidateInstanceFile is a scanned source file and the result of the two
// client-instance checks run against its contents.
type CandidateInstanceFile struct {
	AbsolutePath          string
	ContainsFactoryCall   bool
	ContainsDefaultExport bool
}

// Qualifies reports whether the file looks like a shared client configuration
func (c CandidateInstanceFile) Qualifies() bool {
	return c.ContainsFactoryCall && c.ContainsDefaultExport
}
