package logger

import (
	"io"
	"strings"

	"golang.org/x/exp/slog"

	"oficina/internal/config"
)

// NewWriter создает логгер для окружения env.
// level ("debug", "info", "warn", "error") переопределяет уровень окружения.
func NewWriter(env string, w io.Writer, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelInfo)}))
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelOr(level, slog.LevelDebug)}))
	default:
		log = setupPrettySlogWriter(w, levelOr(level, slog.LevelDebug))
	}

	return log
}

// NewDiscard возвращает логгер, который ничего не пишет
func NewDiscard() *slog.Logger {
	return slog.New(discardHandler{})
}

func setupPrettySlogWriter(w io.Writer, level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(w))
}

func levelOr(level string, def slog.Level) slog.Level {
	if level == "" {
		return def
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return def
	}
	return l
}
