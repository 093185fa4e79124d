package config

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging points the global zerolog logger at stderr with the given level.
// stdout is reserved for the program transcript.
func SetupLogging(level string) {
	SetupLoggingTo(os.Stderr, level)
}

// SetupLoggingTo is SetupLogging with an explicit writer.
// Empty or unknown levels fall back to warn so play is not interleaved with logs.
func SetupLoggingTo(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	log.Logger = zerolog.New(cw).With().Timestamp().Logger()
	if err != nil && level != "" {
		log.Warn().Str("level", level).Msg("unknown LOG_LEVEL, using warn")
	}
}

// isTerminal reports whether w is a terminal; colors are dropped otherwise.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
