package ports

import "go.trai.ch/scriptmerge/internal/core/domain"

// ConfigLoader defines the interface for loading the plugin configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the project rooted at root.
	// A missing config file is not an error; defaults are returned instead.
	Load(root string) (domain.Config, error)
}
