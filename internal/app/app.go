package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/nodelaunch/internal/config"
	"github.com/specialistvlad/nodelaunch/internal/ctxlog"
	"github.com/specialistvlad/nodelaunch/internal/history"
	"github.com/specialistvlad/nodelaunch/internal/launcher"
)

// ErrNoApps is returned when a definition loads without any app.
var ErrNoApps = errors.New("no apps defined")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	specs  []config.LaunchSpec

	store      *history.Store
	launcher   *launcher.Launcher
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It builds the App's own
// logger and, for every command except history, loads and selects the launch
// records up front so a bad definition fails before anything runs. The
// caller must Close the returned App.
func NewApp(outW, errW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}

	if cfg.Command != CommandHistory {
		specs, err := loader.Load(ctx, cfg.ConfigPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logger.Debug("Launch definitions loaded.", "apps", len(specs))

		if a.specs, err = selectApp(specs, cfg.AppName); err != nil {
			return nil, err
		}
	}

	if cfg.HistoryDB != "" && (cfg.Command == CommandRun || cfg.Command == CommandHistory) {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return nil, err
		}
		a.store = store
		logger.Debug("History database opened.", "path", cfg.HistoryDB)
	}

	if cfg.Command == CommandRun {
		opts := []launcher.Option{
			launcher.WithOutput(outW, errW),
			launcher.WithCleanEnv(cfg.CleanEnv),
		}
		if a.store != nil {
			opts = append(opts, launcher.WithRecorder(a.store))
		}
		a.launcher = launcher.New(opts...)
	}
	return a, nil
}

// Close releases the resources opened by NewApp.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// Specs returns the selected launch records. This is primarily for testing.
func (a *App) Specs() []config.LaunchSpec {
	out := make([]config.LaunchSpec, len(a.specs))
	for i, s := range a.specs {
		out[i] = s.Clone()
	}
	return out
}

// selectApp narrows specs to the named app, or returns all of them when name
// is empty.
func selectApp(specs []config.LaunchSpec, name string) ([]config.LaunchSpec, error) {
	if len(specs) == 0 {
		return nil, ErrNoApps
	}
	if name == "" {
		return specs, nil
	}
	for _, s := range specs {
		if s.Name == name {
			return []config.LaunchSpec{s}, nil
		}
	}
	return nil, fmt.Errorf("app %q is not defined", name)
}
