// Package cli wires configuration, theme and logging for the commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/collapsepane/internal/cli/styles"
	"github.com/bnema/collapsepane/internal/domain/build"
	"github.com/bnema/collapsepane/internal/infrastructure/config"
	"github.com/bnema/collapsepane/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	// ConfigErr is set when the config file could not be loaded and the
	// defaults are used instead.
	ConfigErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application. configDir overrides the XDG
// config directory when not empty.
func NewApp(configDir string) (*App, error) {
	mgr, err := newManager(configDir)
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	loadErr := mgr.Load()
	if loadErr == nil {
		cfg = mgr.Get()
	}

	// Commands log to stderr; the demo switches to a session file.
	logger := logging.New(logging.ConfigFromEnv(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level, zerolog.WarnLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}))
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewTheme(cfg),
		ConfigErr: loadErr,
		ctx:       logging.WithContext(context.Background(), logger),
	}, nil
}

func newManager(configDir string) (*config.Manager, error) {
	if configDir != "" {
		return config.NewManagerAt(configDir)
	}
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return mgr, nil
}

// UseSessionLog redirects logging to a new session file in the XDG state
// directory, leaving the terminal to the TUI. Without file logging the
// logger is discarded.
func (a *App) UseSessionLog() (string, error) {
	cfg := logging.ConfigFromEnv(logging.Config{
		Level:      logging.ParseLevel(a.Config.Logging.Level, zerolog.InfoLevel),
		Format:     a.Config.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     io.Discard,
	})

	if !a.Config.Logging.EnableFileLog {
		a.ctx = logging.WithContext(context.Background(), logging.New(cfg))
		return "", nil
	}

	logDir, err := config.GetLogDir()
	if err != nil {
		return "", fmt.Errorf("resolve log dir: %w", err)
	}
	sessionID := logging.GenerateSessionID()
	f, err := logging.OpenSessionLog(logDir, sessionID)
	if err != nil {
		return "", err
	}

	a.closeLog()
	cfg.Output = f
	a.logCleanup = func() { _ = f.Close() }
	a.ctx = logging.WithSession(logging.WithContext(context.Background(), logging.New(cfg)), sessionID)
	return f.Name(), nil
}

func (a *App) closeLog() {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
}

// Close releases all resources.
func (a *App) Close() error {
	a.closeLog()
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
