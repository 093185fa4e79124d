// Command bitmap prints a message through a world-map glyph template.
//
// With -serve it instead serves the template over HTTP, so another
// instance can use it as a remote source.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/novelties/internal/bitmap"
	"github.com/robalobadob/novelties/internal/config"
	"github.com/robalobadob/novelties/internal/console"
	"github.com/robalobadob/novelties/internal/httpserver"
)

type bitmapConfig struct {
	LogLevel string        `env:"LOG_LEVEL" envDefault:"warn"`
	Source   string        `env:"BITMAP_SOURCE" envDefault:"builtin"`
	URL      string        `env:"BITMAP_URL" envDefault:"https://inventwithpython.com/bitmapworld.txt"`
	Timeout  time.Duration `env:"BITMAP_TIMEOUT" envDefault:"10s"`
	Serve    string        `env:"BITMAP_SERVE"`
}

func bindFlags(fs *flag.FlagSet, cfg *bitmapConfig) {
	fs.StringVar(&cfg.Source, "source", cfg.Source, "template source: builtin or remote")
	fs.StringVar(&cfg.URL, "url", cfg.URL, "template URL for the remote source")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "remote fetch timeout")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "serve the template on this address instead of prompting (e.g. :5175)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
}

func main() {
	config.LoadDotEnv()

	var cfg bitmapConfig
	fs := flag.NewFlagSet("bitmap", flag.ExitOnError)
	if err := config.ParseConfigFromArgs(&cfg, fs, os.Args[1:], bindFlags); err != nil {
		config.Exitf("bitmap: %v", err)
	}
	config.SetupLogging(cfg.LogLevel)

	src, err := bitmap.SourceFor(cfg.Source, cfg.URL, cfg.Timeout)
	if err != nil {
		config.Exitf("bitmap: %v", err)
	}

	if cfg.Serve != "" {
		if err := httpserver.New(src).Start(cfg.Serve); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := &bitmap.Session{Console: console.New(os.Stdin, os.Stdout), Source: src}
	if err := session.Play(ctx); err != nil {
		log.Error().Err(err).Msg("rendering aborted")
	}
}
