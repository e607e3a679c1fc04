package model

// Payload is a resolved template: the files and dependencies of one
// (framework, provider) component.
type Payload struct {
	// Name is the component name.
	Name string `json:"name" yaml:"name"`
	// Description is a one-line summary of the component.
	Description string `json:"description" yaml:"description"`
	// Framework is the framework the files are written for.
	Framework Framework `json:"framework" yaml:"framework"`
	// Files are written in order.
	Files []FileEntry `json:"files" yaml:"files"`
	// Dependencies are package names handed to the package manager.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// FileEntry is a single file of a Payload.
type FileEntry struct {
	// Content is the file body, written verbatim.
	Content string `json:"content" yaml:"content"`
	// Target is the destination relative to the project's source root.
	Target string `json:"target" yaml:"target"`
	// Type classifies the file.
	Type FileKind `json:"type" yaml:"type"`
}

// Source records where a Payload came from.
type Source string

const (
	// SourceRemote is the HTTP registry.
	SourceRemote Source = "remote"
	// SourceLocal is the bundled fallback.
	SourceLocal Source = "local"
)
