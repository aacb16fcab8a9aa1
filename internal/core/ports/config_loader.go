package ports

import "go.nixgl.dev/glhost/internal/core/domain"

// ConfigLoader resolves the wrapper configuration from the optional
// config file and environment defaults.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the effective configuration. A missing config file
	// is not an error; defaults apply.
	Load() (*domain.Config, error)
}
