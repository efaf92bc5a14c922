package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Camera  CameraConfig  `mapstructure:"camera"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds catalog API configuration
type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	PageSize       int           `mapstructure:"page_size"`       // Entries resolved by the list fetch
	Timeout        time.Duration `mapstructure:"timeout"`         // Per-request HTTP timeout
	MaxConcurrency int           `mapstructure:"max_concurrency"` // 0 = unbounded fan-out
}

// StorageConfig holds key-value store configuration
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "bolt", "sqlite" or "memory"
	Path   string `mapstructure:"path"`
}

// CameraConfig holds camera capability configuration
type CameraConfig struct {
	Platform   string `mapstructure:"platform"`   // "android", "ios" or "desktop"
	Permission string `mapstructure:"permission"` // "granted" or "denied"
	Source     string `mapstructure:"source"`     // Image copied on each still capture
	PhotosDir  string `mapstructure:"photos_dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://pokeapi.co/api/v2",
			PageSize:       21,
			Timeout:        60 * time.Second,
			MaxConcurrency: 0,
		},
		Storage: StorageConfig{
			Driver: "bolt",
			Path:   filepath.Join(defaultDataPath(), "dexcam.db"),
		},
		Camera: CameraConfig{
			Platform:   "desktop",
			Permission: "granted",
			Source:     "",
			PhotosDir:  filepath.Join(defaultDataPath(), "photos"),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "dexcam.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "dexcam")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "dexcam")
	}
}

// defaultConfigPath returns the default config file directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "dexcam")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dexcam")
	}
}

// LoadConfig loads configuration from the default locations and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom loads configuration from file, or from the default search
// paths when file is empty. DEXCAM_* environment variables override both.
func LoadConfigFrom(file string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	setDefaults(v, cfg)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (DEXCAM_API_BASE_URL, ...)
	v.SetEnvPrefix("DEXCAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.page_size", cfg.API.PageSize)
	v.SetDefault("api.timeout", cfg.API.Timeout)
	v.SetDefault("api.max_concurrency", cfg.API.MaxConcurrency)

	v.SetDefault("storage.driver", cfg.Storage.Driver)
	v.SetDefault("storage.path", cfg.Storage.Path)

	v.SetDefault("camera.platform", cfg.Camera.Platform)
	v.SetDefault("camera.permission", cfg.Camera.Permission)
	v.SetDefault("camera.source", cfg.Camera.Source)
	v.SetDefault("camera.photos_dir", cfg.Camera.PhotosDir)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate rejects values the rest of the program cannot act on
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "bolt", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}
	switch c.Camera.Platform {
	case "android", "ios", "desktop":
	default:
		return fmt.Errorf("unknown camera platform: %q", c.Camera.Platform)
	}
	if c.API.PageSize < 0 || c.API.MaxConcurrency < 0 {
		return fmt.Errorf("api.page_size and api.max_concurrency must not be negative")
	}
	return nil
}

// SaveConfig writes cfg to the default config file
func SaveConfig(cfg *Config) (string, error) {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, cfg)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}
