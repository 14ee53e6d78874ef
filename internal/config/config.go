package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
	} `yaml:"server"`
	Upstream struct {
		BaseURL string `yaml:"base_url" env:"UPSTREAM_BASE_URL"`
		Token   string `yaml:"token" env:"UPSTREAM_TOKEN"`
		Timeout string `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
	} `yaml:"upstream"`
	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
		Prefix   string `yaml:"prefix" env:"REDIS_PREFIX"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url" env:"POSTGRES_URL"`
	} `yaml:"postgres"`
	Quiz struct {
		TTL string `yaml:"ttl" env:"QUIZ_TTL"`
	} `yaml:"quiz"`
}

// Load reads YAML config from path, then overlays environment variables.
// A missing file is not an error; the service can run on env alone.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case errors.Is(err, fs.ErrNotExist):
		// env-only deployment
	default:
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty or
// malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
