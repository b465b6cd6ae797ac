package settings

import "github.com/kailas-cloud/indexgen/internal/domain/generator"

// Repository stores the current generator configuration.
type Repository interface {
	Get() generator.Config
	Update(fn func(generator.Config) (generator.Config, error)) (generator.Config, error)
}
