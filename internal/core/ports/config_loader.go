package ports

import "go.trai.ch/pace/internal/core/domain"

// ConfigLoader resolves the application settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory. When no config file exists it returns the built-in
	// defaults rather than an error.
	Load(cwd string) (domain.Settings, error)
}
