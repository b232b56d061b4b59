package models

// GenerationInput is everything the prompt flow collects before generation starts
type GenerationInput struct {
	ResourceName string    // raw resource name as typed
	DestDir      string    // project source root, e.g. ./src
	Client       ClientRef // shared client wiring decision
}

// PlannedFile is a single file the materializer will write
type PlannedFile struct {
	Kind    ArtifactKind // role of the file
	Path    string       // path including the destination root
	Content string       // rendered source text
}

// GenerationPlan describes every directory and file for one resource.
// It is built once and not mutated afterwards.
type GenerationPlan struct {
	Resource    ResourceName
	DestDir     string
	Client      ClientRef
	Directories []string
	Files       []PlannedFile
}

// File returns the planned file of the given kind
func (p *GenerationPlan) File(kind ArtifactKind) (PlannedFile, bool) {
	for _, f := range p.Files {
		if f.Kind == kind {
			return f, true
		}
	}
	return PlannedFile{}, false
}

// MaterializeReport records what materialization actually changed on disk
type MaterializeReport struct {
	CreatedDirectories []string // directories that did not exist before
	WrittenFiles       []string // every file written, in plan order
}
