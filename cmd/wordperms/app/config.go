package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/kestfor/WordPerms/internal/services/generator"
	"github.com/kestfor/WordPerms/internal/services/wordlist"
	"github.com/kestfor/WordPerms/pkg/logging"
	"gopkg.in/yaml.v3"
)

const envPrefix = "WORDPERMS_"

const (
	defaultMaxLength = 4
	defaultLogLevel  = "info"
)

type Config struct {
	Input       string `yaml:"input" env:"INPUT"`
	Output      string `yaml:"output" env:"OUTPUT"`
	Limit       *int   `yaml:"limit" env:"LIMIT"`
	Sort        bool   `yaml:"sort" env:"SORT"`
	MetricsFile string `yaml:"metrics_file" env:"METRICS_FILE"`

	Reader    *wordlist.ReaderOptions `yaml:"reader" envPrefix:"READER_"`
	Generator *generator.Config       `yaml:"generator" envPrefix:"GENERATOR_"`
	Logger    *logging.LoggerConfig   `yaml:"logger" envPrefix:"LOG_"`
}

func DefaultConfig() *Config {
	return &Config{
		Reader: &wordlist.ReaderOptions{},
		Generator: &generator.Config{
			MaxLength:      defaultMaxLength,
			Capitalization: generator.CapitalizationAll,
			Workers:        runtime.GOMAXPROCS(0),
		},
		Logger: &logging.LoggerConfig{
			Level: defaultLogLevel,
		},
	}
}

// LoadConfig layers an optional yaml file, an optional dotenv file and
// WORDPERMS_* environment variables over the defaults.
func LoadConfig(cfgPath, envPath string) (*Config, error) {
	cfg := DefaultConfig()

	if cfgPath != "" {
		bytes, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(bytes, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input file is required")
	}

	if c.Limit != nil && *c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", *c.Limit)
	}

	if c.Reader == nil {
		return fmt.Errorf("reader config is required")
	}

	if c.Generator == nil {
		return fmt.Errorf("generator config is required")
	}

	if c.Logger == nil {
		return fmt.Errorf("logger config is required")
	}

	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator config is invalid: %w", err)
	}

	return nil
}
