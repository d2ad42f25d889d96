package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tunegrip/internal/eventbus"
)

// FileName is the per-directory config file name
const FileName = ".tunegrip.toml"

// Library backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Library  string         `toml:"library"`  // path to the YAML library file
	Backend  string         `toml:"backend"`  // "memory" or "sqlite"
	Database string         `toml:"database"` // sqlite database path
	LogLevel string         `toml:"log_level"`
	Search   SearchSettings `toml:"search"`
	UI       UISettings     `toml:"ui"`
}

// SearchSettings controls how results are produced
type SearchSettings struct {
	GroupBy    string `toml:"group_by"`    // track attribute used to group results
	MaxResults int    `toml:"max_results"` // maximum number of tracks per search
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowTrackNumbers bool `toml:"show_track_numbers"`
	ShowDurations    bool `toml:"show_durations"`
}

// Validate checks the config for values the rest of the program cannot handle
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Backend == BackendSQLite && c.Database == "" {
		return fmt.Errorf("backend %q requires a database path", c.Backend)
	}
	switch c.Search.GroupBy {
	case "Album", "Artist", "AlbumArtist", "Composer":
	default:
		return fmt.Errorf("cannot group results by %q", c.Search.GroupBy)
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive, got %d", c.Search.MaxResults)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the user config directory for tunegrip
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tunegrip")
}

// NewConfigService creates a config service reading the user config file
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the user config file.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			Library: cfg.Library,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Library:  "library.yaml",
		Backend:  BackendMemory,
		Database: filepath.Join(Dir(), "library.db"),
		LogLevel: "info",
		Search: SearchSettings{
			GroupBy:    "Album",
			MaxResults: 500,
		},
		UI: UISettings{
			ShowTrackNumbers: true,
			ShowDurations:    true,
		},
	}
}
