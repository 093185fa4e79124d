// Command bagels is a deductive number-guessing game.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/novelties/internal/bagels"
	"github.com/robalobadob/novelties/internal/config"
	"github.com/robalobadob/novelties/internal/console"
	"github.com/robalobadob/novelties/internal/rng"
	"github.com/robalobadob/novelties/internal/store"
)

type bagelsConfig struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	Digits     int    `env:"BAGELS_DIGITS" envDefault:"2"`
	MaxGuesses int    `env:"BAGELS_GUESSES" envDefault:"10"`
	Seed       uint64 `env:"BAGELS_SEED" envDefault:"0"`
}

func bindFlags(fs *flag.FlagSet, cfg *bagelsConfig) {
	fs.IntVar(&cfg.Digits, "digits", cfg.Digits, "number of digits in the secret (1-10)")
	fs.IntVar(&cfg.MaxGuesses, "guesses", cfg.MaxGuesses, "guesses allowed per game")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
}

func main() {
	config.LoadDotEnv()

	var cfg bagelsConfig
	fs := flag.NewFlagSet("bagels", flag.ExitOnError)
	if err := config.ParseConfigFromArgs(&cfg, fs, os.Args[1:], bindFlags); err != nil {
		config.Exitf("bagels: %v", err)
	}
	config.SetupLogging(cfg.LogLevel)

	if cfg.Digits < 1 || cfg.Digits > 10 {
		config.Exitf("bagels: digits must be between 1 and 10, got %d", cfg.Digits)
	}
	if cfg.MaxGuesses < 1 {
		config.Exitf("bagels: guesses must be positive, got %d", cfg.MaxGuesses)
	}

	src, seed, err := rng.FromSeed(cfg.Seed)
	if err != nil {
		config.Exitf("bagels: %v", err)
	}
	log.Debug().Uint64("seed", seed).Msg("random source ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := &bagels.Session{
		Console:    console.New(os.Stdin, os.Stdout),
		Rand:       src,
		Digits:     cfg.Digits,
		MaxGuesses: cfg.MaxGuesses,
		Games:      store.NewMemoryStore(),
	}
	if err := session.Play(ctx); err != nil {
		log.Error().Err(err).Msg("game aborted")
	}
}
