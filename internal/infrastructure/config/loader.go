// Package config loads collapsepane settings with Viper from a TOML file,
// COLLAPSEPANE_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/collapsepane/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	logger         zerolog.Logger
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager that reads config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("COLLAPSEPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "COLLAPSEPANE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind COLLAPSEPANE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "COLLAPSEPANE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind COLLAPSEPANE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
		logger:    logging.NewFromEnv(),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// normalizeConfig fixes up values that have an obvious intended meaning.
// Snap points are sorted with negatives and duplicates dropped, so a
// malformed list degrades to less snapping rather than an error.
func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Pane.Orientation)) {
	case OrientationHorizontal:
		config.Pane.Orientation = OrientationHorizontal
	default:
		config.Pane.Orientation = OrientationVertical
	}

	points := make([]int, 0, len(config.Pane.SnapPoints))
	seen := make(map[int]bool, len(config.Pane.SnapPoints))
	for _, p := range config.Pane.SnapPoints {
		if p < 0 || seen[p] {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}
	sort.Ints(points)
	config.Pane.SnapPoints = points

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Pane.InitialSizes = append([]float64(nil), m.config.Pane.InitialSizes...)
	configCopy.Pane.SnapPoints = append([]int(nil), m.config.Pane.SnapPoints...)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile()); err != nil {
		return err
	}

	saved := *cfg
	m.config = &saved
	if m.watching {
		m.skipNextReload = true
		return nil
	}
	return m.viper.ReadInConfig()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile())
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPaneDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setPaneDefaults(defaults *Config) {
	m.viper.SetDefault("pane.initial_sizes", defaults.Pane.InitialSizes)
	m.viper.SetDefault("pane.collapsed_size", defaults.Pane.CollapsedSize)
	m.viper.SetDefault("pane.start_collapsed", defaults.Pane.StartCollapsed)
	m.viper.SetDefault("pane.orientation", defaults.Pane.Orientation)
	m.viper.SetDefault("pane.inverted", defaults.Pane.Inverted)
	m.viper.SetDefault("pane.separator_width", defaults.Pane.SeparatorWidth)
	m.viper.SetDefault("pane.separator_color", defaults.Pane.SeparatorColor)
	m.viper.SetDefault("pane.moving_separator_color", defaults.Pane.MovingSeparatorColor)
	m.viper.SetDefault("pane.collapse_button_offset", defaults.Pane.CollapseButtonOffset)
	m.viper.SetDefault("pane.collapse_glyph", defaults.Pane.CollapseGlyph)
	m.viper.SetDefault("pane.expand_glyph", defaults.Pane.ExpandGlyph)
	m.viper.SetDefault("pane.snap_points", defaults.Pane.SnapPoints)
	m.viper.SetDefault("pane.snap_radius", defaults.Pane.SnapRadius)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
}
