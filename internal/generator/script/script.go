// Package script renders the Unity editor window that indexes a project into Qdrant.
package script

import (
	"strings"
	"text/template"

	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

// VectorSize is the dimensionality the generated window creates its collection with.
const VectorSize = 768

// MaxContentChars is the truncation limit applied before embedding.
const MaxContentChars = 8000

var csEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`)

var scriptTemplate = template.Must(
	template.New("script").
		Delims("[[", "]]").
		Funcs(template.FuncMap{"cs": csString}).
		Parse(scriptSource),
)

type templateData struct {
	ServiceURL     string
	CollectionName string
	EmbeddingModel string
	Distance       string
	ChunkSize      int
	APIKey         string
}

// Generate renders the C# source for cfg. The output depends only on cfg.
func Generate(cfg generator.Config) string {
	data := templateData{
		ServiceURL:     cfg.ServiceURL,
		CollectionName: cfg.CollectionName,
		EmbeddingModel: cfg.EmbeddingModel,
		Distance:       string(cfg.Distance),
		ChunkSize:      cfg.ChunkSize,
		APIKey:         cfg.APIKey,
	}

	var b strings.Builder
	b.Grow(len(scriptSource) + 256)
	if err := scriptTemplate.Execute(&b, data); err != nil {
		// Only a broken template can fail here; the data is plain strings and ints.
		panic("script: execute template: " + err.Error())
	}
	return b.String()
}

// csString escapes s for use inside a regular C# string literal.
func csString(s string) string {
	return csEscaper.Replace(s)
}
