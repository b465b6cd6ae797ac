package artifact

import "github.com/kailas-cloud/indexgen/internal/domain/generator"

// ConfigReader provides the configuration to render from.
type ConfigReader interface {
	Get() generator.Config
}
