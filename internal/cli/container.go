// Package cli wires the application dependencies together.
package cli

import (
	"fmt"

	"github.com/prefkit/prefsync/internal/config"
	"github.com/prefkit/prefsync/internal/filesystem"
	"github.com/prefkit/prefsync/internal/logger"
	"github.com/prefkit/prefsync/internal/theme"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.AppConfig
	UserConfig config.Config
	Filesystem *filesystem.Filesystem
	Paths      map[filesystem.PathType]string
	Logger     logger.Logger
	ThemeMgr   *theme.Manager
}

// InitOptions contains options for initialization
type InitOptions struct {
	Version  string
	Commit   string
	Date     string
	LogLevel logger.LogLevel
	Theme    theme.Theme
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts InitOptions) (*Container, error) {
	container := &Container{}
	var err error

	if opts.Version == "" {
		return nil, fmt.Errorf("version is required")
	}

	container.Config = config.NewDefaultConfig(
		config.WithVersion(config.Version{
			Version: opts.Version,
			Commit:  opts.Commit,
			Date:    opts.Date,
		}),
	)

	container.ThemeMgr = theme.NewManager(opts.Theme)

	container.Filesystem = filesystem.NewAppFilesystem(container.Config)

	container.Paths, err = container.Filesystem.EnsureAllPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure all application paths: %w", err)
	}

	container.UserConfig, err = config.LoadConfig(container.Paths[filesystem.ConfigFilePath])
	if err != nil {
		return nil, fmt.Errorf("failed to load user configuration: %w", err)
	}

	logLevel := opts.LogLevel
	if logLevel == "" && container.UserConfig.Logging.Level != "" {
		logLevel = logger.LogLevel(container.UserConfig.Logging.Level)
	}

	container.Logger, err = logger.NewZapLogger(logger.Config{
		FilePath: container.Paths[filesystem.LogsFilePath],
		LogLevel: logLevel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container.Logger.Info("logger initialized successfully", nil)

	return container, nil
}

// PrefsDBPath returns the preferences database location, honoring the user
// configuration override.
func (c *Container) PrefsDBPath() string {
	if c.UserConfig.Sink.DatabasePath != "" {
		return c.UserConfig.Sink.DatabasePath
	}
	return c.Paths[filesystem.PrefsDB]
}
