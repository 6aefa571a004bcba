package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TIMETABLE"

// Config holds the runtime settings.
type Config struct {
	// DataFile is the JSON file holding the timetable
	DataFile string `mapstructure:"data_file"`

	// ExportDir is where exports are written when no output path is given
	ExportDir string `mapstructure:"export_dir"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format is "console" or "json"
	Format string `mapstructure:"format"`
}

// Load reads the configuration.
// Priority: environment variables > .env file > config file > defaults.
// configFile overrides paths.Config when non-empty; unlike the default
// location, an explicit file must exist.
func Load(paths *Paths, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_file", paths.DataFile)
	v.SetDefault("export_dir", ExecutableDir())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// .env only fills variables that are not already set
	if _, err := os.Stat(paths.Env); err == nil {
		if err := godotenv.Load(paths.Env); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", paths.Env, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", paths.Env, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configFile != ""
	if !explicit {
		configFile = paths.Config
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("invalid config: data_file must not be empty")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid config: log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
