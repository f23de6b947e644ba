package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/siddharthbaleja7/fb-messenger/config"
)

// Logger is a thin wrapper around zerolog so callers can pass it by value and
// log with alternating key/value pairs.
type Logger struct {
	zl zerolog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var zl zerolog.Logger
	if cfg.LoggerMode.Development && !cfg.LoggerMode.Prod {
		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		zl = zerolog.New(output)
	} else {
		zl = zerolog.New(os.Stdout)
	}

	zl = zl.With().
		Timestamp().
		Str("service", cfg.Server.ServiceName).
		Str("environment", cfg.Server.Environment).
		Logger().
		Level(level)

	return &Logger{zl: zl}, nil
}

func parseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (l Logger) Debug(msg string, keysAndValues ...any) {
	l.emit(l.zl.Debug(), msg, keysAndValues)
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	l.emit(l.zl.Info(), msg, keysAndValues)
}

func (l Logger) Warn(msg string, keysAndValues ...any) {
	l.emit(l.zl.Warn(), msg, keysAndValues)
}

func (l Logger) Error(msg string, keysAndValues ...any) {
	l.emit(l.zl.Error(), msg, keysAndValues)
}

func (l Logger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}

func (l Logger) emit(ev *zerolog.Event, msg string, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	ev.Msg(msg)
}
