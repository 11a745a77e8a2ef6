package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port" env:"SERVER_PORT"`
	} `yaml:"server"`

	AI struct {
		APIKey string `yaml:"apiKey" env:"OPENAI_API_KEY"`
		Model  string `yaml:"model" env:"AI_MODEL"`
	} `yaml:"ai"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	} `yaml:"cors"`

	RateLimit struct {
		Capacity   int `yaml:"capacity" env:"RATELIMIT_CAPACITY"`
		RefillRate int `yaml:"refillRate" env:"RATELIMIT_REFILL_RATE"`
	} `yaml:"rateLimit"`

	// Seed loads the bundled demo projects at startup.
	Seed bool `yaml:"seed" env:"SEED_PROJECTS"`
}

// Load baca file config.yaml, lalu overlay env vars.
// A missing file is fine: the service has no required external wiring
// besides the AI key, which usually arrives via environment.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env only
	default:
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.Capacity = 60
	cfg.RateLimit.RefillRate = 5
	cfg.Seed = true
	return cfg
}
