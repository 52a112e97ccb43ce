// Package logger configures the process-wide zerolog logger. The rest of
// the code logs through zerolog's global logger, so there is nothing to
// thread through the dependency graph.
package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global log format and level for the given environment.
// Development gets human-readable console output at debug level; anything
// else emits JSON at info.
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
