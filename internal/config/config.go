// internal/config/config.go
//
// Runtime configuration, read from the environment once at startup.
// main loads a `.env` file first (godotenv) so the same variables can be
// kept there in development.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/robalobadob/fraudle/internal/game"
	"github.com/robalobadob/fraudle/internal/words"
)

// Config holds every tunable of the server and the generator.
type Config struct {
	Port           string        `env:"PORT"            envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL"       envDefault:"info"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN"   envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	AlphabetSize  int    `env:"FRAUDLE_ALPHABET_SIZE"   envDefault:"10"`
	Seed          uint64 `env:"FRAUDLE_SEED"            envDefault:"0"`
	MaxGuessTries int    `env:"FRAUDLE_MAX_GUESS_TRIES" envDefault:"1000000"`
	MaxRounds     int    `env:"FRAUDLE_MAX_ROUNDS"      envDefault:"0"`
}

// Load parses the process environment and validates ranges.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom is Load over an explicit environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env.Parse cannot.
func (c Config) Validate() error {
	if _, err := words.NewAlphabet(c.AlphabetSize); err != nil {
		return fmt.Errorf("FRAUDLE_ALPHABET_SIZE: %w", err)
	}
	if c.MaxGuessTries <= 0 {
		return fmt.Errorf("FRAUDLE_MAX_GUESS_TRIES must be positive, got %d", c.MaxGuessTries)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("FRAUDLE_MAX_ROUNDS must not be negative, got %d", c.MaxRounds)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

// Generator builds the guess generator described by c.
func (c Config) Generator() (*game.Generator, error) {
	alphabet, err := words.NewAlphabet(c.AlphabetSize)
	if err != nil {
		return nil, err
	}
	g := game.NewGenerator(alphabet, words.NewLockedSource(c.Seed))
	g.MaxTries = c.MaxGuessTries
	g.MaxRounds = c.MaxRounds
	return g, nil
}
