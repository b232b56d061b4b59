package models

// ArtifactKind identifies one generated source file role
type ArtifactKind int

const (
	ArtifactCollectionRoute ArtifactKind = iota
	ArtifactItemRoute
	ArtifactTypeDecl
	ArtifactValidationSchema
	ArtifactDataHooks
	ArtifactActionFunctions
	ArtifactClientConfig
)

// String returns the string representation of the artifact kind
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactCollectionRoute:
		return "CollectionRoute"
	case ArtifactItemRoute:
		return "ItemRoute"
	case ArtifactTypeDecl:
		return "TypeDecl"
	case ArtifactValidationSchema:
		return "ValidationSchema"
	case ArtifactDataHooks:
		return "DataHooks"
	case ArtifactActionFunctions:
		return "ActionFunctions"
	case ArtifactClientConfig:
		return "ClientConfig"
	default:
		return "Unknown"
	}
}

// ResourceArtifacts lists the kinds generated for every resource, in write order
var ResourceArtifacts = []ArtifactKind{
	ArtifactCollectionRoute,
	ArtifactItemRoute,
	ArtifactTypeDecl,
	ArtifactValidationSchema,
	ArtifactDataHooks,
	ArtifactActionFunctions,
}
