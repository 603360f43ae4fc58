package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitLogging configures the process logger. When path is non-empty the log
// is appended to that file, otherwise it goes to stderr.
func InitLogging(path string) {
	var w io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to open log file, falling back to stderr")
		} else {
			w = f
		}
	}
	log = zerolog.New(w).With().Timestamp().Logger()
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	log.Info().Msg(fmt.Sprintf(format, args...))
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	log.Error().Msg(fmt.Sprintf(format, args...))
}

func DebugLog(ctx context.Context, format string, args ...interface{}) {
	log.Debug().Msg(fmt.Sprintf(format, args...))
}
