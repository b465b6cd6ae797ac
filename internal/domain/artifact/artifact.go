// Package artifact describes the generated text files.
package artifact

// Name identifies a generated artifact.
type Name string

// Artifact names.
const (
	Script  Name = "script"
	Compose Name = "compose"
)

// File names offered for download.
const (
	ScriptFileName  = "QdrantIndexerWindow.cs"
	ComposeFileName = "docker-compose.yml"
)

// Names lists all artifacts in display order.
func Names() []Name { return []Name{Script, Compose} }

// IsValid checks if the name is a known artifact.
func (n Name) IsValid() bool { return n == Script || n == Compose }

// FileName returns the download file name, or "" for unknown names.
func (n Name) FileName() string {
	switch n {
	case Script:
		return ScriptFileName
	case Compose:
		return ComposeFileName
	default:
		return ""
	}
}

// Artifact is a rendered file. Content is exactly the generator output.
type Artifact struct {
	Name     Name
	FileName string
	Content  string
}
