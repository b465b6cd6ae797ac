package artifact

import (
	"fmt"

	"github.com/kailas-cloud/indexgen/internal/domain"
	domart "github.com/kailas-cloud/indexgen/internal/domain/artifact"
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
	"github.com/kailas-cloud/indexgen/internal/generator/compose"
	"github.com/kailas-cloud/indexgen/internal/generator/script"
	"github.com/kailas-cloud/indexgen/internal/metrics"
)

// Service renders artifacts for the current configuration. Nothing is cached:
// every call reflects the most recently committed configuration.
type Service struct {
	config ConfigReader
}

// New creates a Service.
func New(config ConfigReader) *Service {
	return &Service{config: config}
}

// List renders every artifact from a single configuration snapshot.
func (s *Service) List() []domart.Artifact {
	cfg := s.config.Get()
	out := make([]domart.Artifact, 0, len(domart.Names()))
	for _, n := range domart.Names() {
		out = append(out, Render(n, cfg))
	}
	return out
}

// Get renders one artifact by name.
func (s *Service) Get(name domart.Name) (domart.Artifact, error) {
	if !name.IsValid() {
		return domart.Artifact{}, fmt.Errorf("artifact %q: %w", name, domain.ErrUnknownArtifact)
	}
	return Render(name, s.config.Get()), nil
}

// Render produces the named artifact for cfg. name must be valid.
func Render(name domart.Name, cfg generator.Config) domart.Artifact {
	var content string
	switch name {
	case domart.Script:
		content = script.Generate(cfg)
	case domart.Compose:
		content = compose.Generate(compose.PortFromURL(cfg.ServiceURL))
	}
	metrics.ArtifactRendersTotal.WithLabelValues(string(name)).Inc()

	return domart.Artifact{
		Name:     name,
		FileName: name.FileName(),
		Content:  content,
	}
}
