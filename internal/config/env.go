// internal/config/env.go
//
// Configuration loading shared by the binaries.
// Order of precedence (lowest first):
//   1. envDefault tags on the target struct.
//   2. Variables from the process environment (and an optional .env file).
//   3. Command-line flags bound by the caller.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv reads .env from the working directory if present.
// A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ParseConfigFromArgs loads env defaults into cfg, lets bind register flags
// whose defaults are the env values, and parses args.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}
