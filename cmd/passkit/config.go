package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type appConfig struct {
	WordlistPath string `env:"PASSKIT_WORDLIST" envDefault:"top_english_nouns_lower_100000.txt"`
	MemorableDir string `env:"PASSKIT_MEMORABLE_DIR" envDefault:"Memorable"`
	RandomDir    string `env:"PASSKIT_RANDOM_DIR" envDefault:"Random"`
	LogLevel     string `env:"PASSKIT_LOG_LEVEL" envDefault:"info"`
}

func loadConfig() (appConfig, error) {
	// The .env file is optional; missing is fine.
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
