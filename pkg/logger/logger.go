package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // Enable pretty console output
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Logger()
}

// EngineAdapter bridges a zerolog.Logger to the printf-style interface the
// calculation engine expects.
type EngineAdapter struct {
	Log zerolog.Logger
}

func (a EngineAdapter) Debugf(format string, args ...any) { a.Log.Debug().Msgf(format, args...) }
func (a EngineAdapter) Infof(format string, args ...any)  { a.Log.Info().Msgf(format, args...) }
func (a EngineAdapter) Warnf(format string, args ...any)  { a.Log.Warn().Msgf(format, args...) }
func (a EngineAdapter) Errorf(format string, args ...any) { a.Log.Error().Msgf(format, args...) }
