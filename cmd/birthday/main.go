// Command birthday explores the birthday paradox with a Monte Carlo simulation.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/novelties/internal/birthday"
	"github.com/robalobadob/novelties/internal/config"
	"github.com/robalobadob/novelties/internal/console"
	"github.com/robalobadob/novelties/internal/rng"
)

type birthdayConfig struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	Simulations int    `env:"BIRTHDAY_SIMULATIONS" envDefault:"100000"`
	Workers     int    `env:"BIRTHDAY_WORKERS" envDefault:"1"`
	Seed        uint64 `env:"BIRTHDAY_SEED" envDefault:"0"`
}

func bindFlags(fs *flag.FlagSet, cfg *birthdayConfig) {
	fs.IntVar(&cfg.Simulations, "simulations", cfg.Simulations, "number of simulated groups")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 uses every CPU)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
}

func main() {
	config.LoadDotEnv()

	var cfg birthdayConfig
	fs := flag.NewFlagSet("birthday", flag.ExitOnError)
	if err := config.ParseConfigFromArgs(&cfg, fs, os.Args[1:], bindFlags); err != nil {
		config.Exitf("birthday: %v", err)
	}
	config.SetupLogging(cfg.LogLevel)

	if cfg.Simulations < 1 {
		config.Exitf("birthday: simulations must be positive, got %d", cfg.Simulations)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	seed := cfg.Seed
	if seed == 0 {
		s, err := rng.NewSeed()
		if err != nil {
			config.Exitf("birthday: %v", err)
		}
		seed = s
	}
	// The shown sample and the simulation chunks use separate streams.
	src, simSeed := rng.Split(seed)
	log.Debug().Uint64("seed", seed).Int("workers", cfg.Workers).Msg("random source ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := &birthday.Session{
		Console: console.New(os.Stdin, os.Stdout),
		Rand:    src,
		Trials:  cfg.Simulations,
		Workers: cfg.Workers,
		Seed:    simSeed,
	}
	if err := session.Play(ctx); err != nil {
		log.Error().Err(err).Msg("simulation aborted")
	}
}
