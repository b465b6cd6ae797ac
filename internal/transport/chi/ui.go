package chi

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	domart "github.com/kailas-cloud/indexgen/internal/domain/artifact"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
	"github.com/kailas-cloud/indexgen/internal/generator/script"
	"github.com/kailas-cloud/indexgen/internal/version"
)

//go:embed web/index.html
var indexHTML string

//go:embed web/instructions.md
var instructionsMarkdown []byte

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type distanceOption struct {
	Value string
	Label string
}

type artifactTab struct {
	Name     string
	FileName string
}

type indexData struct {
	Instructions template.HTML
	Distances    []distanceOption
	Tabs         []artifactTab
	VectorSize   int
	Version      string
}

func renderInstructions(src []byte) (template.HTML, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var out bytes.Buffer
	if err := md.Convert(src, &out); err != nil {
		return "", fmt.Errorf("render instructions: %w", err)
	}
	return template.HTML(out.String()), nil //nolint:gosec // embedded, trusted markdown
}

// renderIndex builds the UI page once at startup.
func renderIndex() ([]byte, error) {
	instructions, err := renderInstructions(instructionsMarkdown)
	if err != nil {
		return nil, err
	}

	data := indexData{Instructions: instructions, VectorSize: script.VectorSize, Version: version.String()}
	for _, d := range generator.Distances() {
		data.Distances = append(data.Distances, distanceOption{Value: string(d), Label: d.Label()})
	}
	for _, n := range domart.Names() {
		data.Tabs = append(data.Tabs, artifactTab{Name: string(n), FileName: n.FileName()})
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	return buf.Bytes(), nil
}
