package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls the demo board, word stream and result cap.
// Lists are comma-separated; the defaults are the challenge board.
type Config struct {
	Grid  []string `env:"WORDFINDER_GRID"  envSeparator:"," envDefault:"dabcccmobiholas,orgwiocareadios,gchilloeqeperro,zpqnsdtopehoaax,xuvdogredoagggd"`
	Words []string `env:"WORDFINDER_WORDS" envSeparator:"," envDefault:"chill,cold,wind,dog,red,car"`
	Limit int      `env:"WORDFINDER_LIMIT" envDefault:"10"`
}

// loadConfig reads Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Limit < 1 {
		return Config{}, fmt.Errorf("parse env: WORDFINDER_LIMIT must be >= 1, got %d", cfg.Limit)
	}
	return cfg, nil
}
