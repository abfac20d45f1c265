package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/azoth/docgen/internal/config"
	"github.com/azoth/docgen/internal/service"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Logger *log.Logger

	// Services
	Documents service.DocumentService
}

// New creates a new App instance from the default config path
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	return &App{
		Config:    cfg,
		Logger:    logger,
		Documents: service.NewDocumentService(cfg, logger),
	}, nil
}

// SetVerbose raises the log level to debug
func (a *App) SetVerbose() {
	a.Logger.SetLevel(log.DebugLevel)
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
