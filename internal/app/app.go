package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fstruct/internal/config"
	"fstruct/internal/services"
	"fstruct/internal/state"
	"fstruct/internal/ui"
)

// NewBuilder wires the filesystem builder with the configured version cap and
// advisory lock.
func NewBuilder(cfg config.Config) (*services.FSBuilder, error) {
	opts := []services.BuilderOption{
		services.WithResolver(services.NewFSResolver(cfg.MaxVersion)),
	}
	if cfg.Lock.Enabled {
		dir, err := LockDir(cfg)
		if err != nil {
			return nil, err
		}
		timeout := time.Duration(cfg.Lock.TimeoutSeconds) * time.Second
		opts = append(opts, services.WithLocker(services.NewFileLocker(dir, timeout)))
	}
	return services.NewFSBuilder(opts...), nil
}

// LockDir is the configured lock directory or the default under the user
// cache dir.
func LockDir(cfg config.Config) (string, error) {
	if cfg.Lock.Dir != "" {
		return config.ExpandPath(cfg.Lock.Dir)
	}
	dir, err := services.DefaultLockDir()
	if err != nil {
		return "", fmt.Errorf("resolve lock directory: %w", err)
	}
	return dir, nil
}

// Run starts the interactive UI and persists the remembered fields on exit.
func Run(cfg config.Config, configPath string, logger *slog.Logger) error {
	builder, err := NewBuilder(cfg)
	if err != nil {
		return err
	}
	initialState := state.NewState(cfg)
	model := ui.NewModel(initialState, builder, cfg, logger)
	if cfg.BasePath != "" {
		model = model.WithStatus(fmt.Sprintf("Base path: %s", cfg.BasePath))
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		if err := config.SaveRemembered(configPath, provider.ConfigSnapshot()); err != nil {
			logger.Warn("config save failed", slog.String("path", configPath), slog.Any("error", err))
			return fmt.Errorf("save config: %w", err)
		}
	}
	return nil
}
