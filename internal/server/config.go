package server

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds process configuration, read from the environment.
// Command-line flags in main override individual fields after loading.
type AppConfig struct {
	Addr        string `env:"EMBERWICK_ADDR" envDefault:":8080"`
	Environment string `env:"EMBERWICK_ENV" envDefault:"development"`
	LogLevel    string `env:"EMBERWICK_LOG_LEVEL" envDefault:"info"`
	ScriptPath  string `env:"EMBERWICK_SCRIPT" envDefault:"content/village.yaml"`
}

func LoadConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// MustLoadConfig loads configuration or exits; called before the logger is
// configured, so failures go through the stdlib logger.
func MustLoadConfig() AppConfig {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}
