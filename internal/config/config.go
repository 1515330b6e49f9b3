package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"versiontag/internal/logger"
)

// DefaultPerWorker is the number of tags each stress worker mints by default.
const DefaultPerWorker = 10000

// Log holds the logger settings.
type Log struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

// Config holds the command configuration.
type Config struct {
	Workers   int `yaml:"workers"`
	PerWorker int `yaml:"per_worker"`
	Log       Log `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		PerWorker: DefaultPerWorker,
		Log: Log{
			Level: "info",
			Env:   "dev",
		},
	}
}

// Load reads a YAML file on top of the defaults. Fields missing from the
// file keep their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.PerWorker <= 0 {
		return fmt.Errorf("per_worker must be positive, got %d", c.PerWorker)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logger.ParseEnv(c.Log.Env); err != nil {
		return err
	}
	return nil
}

// Logger returns the logger settings for this configuration.
func (c Config) Logger() logger.Config {
	return logger.Config{
		Env:   c.Log.Env,
		Level: c.Log.Level,
	}
}
