package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// WordsPath is the word list; only its first line is read.
	WordsPath string `env:"CAESAR_WORDS" envDefault:"words.txt"`
	// StoryPath is the ciphertext used by demo and decrypt --story.
	StoryPath string `env:"CAESAR_STORY" envDefault:"story.txt"`
	LogLevel  string `env:"CAESAR_LOG_LEVEL" envDefault:"info"`
	// Workers bounds search parallelism; 0 means GOMAXPROCS.
	Workers int `env:"CAESAR_WORKERS" envDefault:"0"`
}

// LoadConfig reads Config from the environment, applying defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
