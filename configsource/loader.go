package configsource

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/skillsenselab/injectkit/logger"
)

// Source is a loaded configuration that inject keys read their defaults
// from. Safe for concurrent reads once loaded.
type Source struct {
	v   *viper.Viper
	log *logger.Logger
}

// loaderConfig collects Load options.
type loaderConfig struct {
	configFile string
	envFile    string
	envPrefix  string
	defaults   map[string]any
}

// Option configures Load.
type Option func(*loaderConfig)

// WithConfigFile sets an explicit config file path. Loading fails if the
// file cannot be read.
func WithConfigFile(path string) Option {
	return func(c *loaderConfig) { c.configFile = path }
}

// WithEnvFile sets an explicit .env file path, loaded into the process
// environment before the config file is read. A missing file is an error;
// without this option Load silently uses ./.env when present.
func WithEnvFile(path string) Option {
	return func(c *loaderConfig) { c.envFile = path }
}

// WithEnvPrefix enables environment-variable overrides using the given
// prefix and underscore-separated paths (e.g. APP_CLIENT_TIMEOUT for
// "client.timeout" under prefix "APP").
func WithEnvPrefix(prefix string) Option {
	return func(c *loaderConfig) { c.envPrefix = prefix }
}

// WithDefaults seeds configuration values that files and environment
// variables may override.
func WithDefaults(defaults map[string]any) Option {
	return func(c *loaderConfig) { c.defaults = defaults }
}

// Load resolves and reads configuration: .env file first, then the config
// file, then environment variables (highest precedence, via Viper).
func Load(opts ...Option) (*Source, error) {
	var cfg loaderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	log := logger.Get("configsource")

	if cfg.envFile != "" {
		if err := godotenv.Load(cfg.envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", cfg.envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	v := viper.New()
	for key, val := range cfg.defaults {
		v.SetDefault(key, val)
	}

	if cfg.envPrefix != "" {
		v.SetEnvPrefix(cfg.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if cfg.configFile != "" {
		v.SetConfigFile(cfg.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfg.configFile, err)
		}
		log.Debug("config file loaded", logger.Fields("file", v.ConfigFileUsed()))
	}

	return &Source{v: v, log: log}, nil
}

// FromViper wraps an already-configured Viper instance.
func FromViper(v *viper.Viper) *Source {
	return &Source{v: v, log: logger.Get("configsource")}
}

// Viper exposes the underlying Viper instance.
func (s *Source) Viper() *viper.Viper { return s.v }
