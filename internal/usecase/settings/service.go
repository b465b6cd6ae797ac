package settings

import (
	"github.com/kailas-cloud/indexgen/internal/domain/generator"
	"github.com/kailas-cloud/indexgen/internal/domain/generator/patch"
)

// Service reads and updates the generator configuration.
type Service struct {
	repo Repository
}

// New creates a Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the current configuration.
func (s *Service) Get() generator.Config {
	return s.repo.Get()
}

// Patch validates raw as a partial update and applies it. Errors wrap
// domain.ErrInvalidPatch and leave the configuration unchanged.
func (s *Service) Patch(raw []byte) (generator.Config, error) {
	p, err := patch.Parse(raw)
	if err != nil {
		return s.repo.Get(), err //nolint:wrapcheck // already wrapped with domain sentinel
	}
	return s.repo.Update(func(c generator.Config) (generator.Config, error) {
		return p.Apply(c), nil
	})
}

// Reset restores the given configuration, typically the startup defaults.
func (s *Service) Reset(cfg generator.Config) generator.Config {
	next, _ := s.repo.Update(func(generator.Config) (generator.Config, error) {
		return cfg, nil
	})
	return next
}
