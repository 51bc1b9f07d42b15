package logging

import (
	"log/slog"
	"os"

	"github.com/rafabene/palettehub-backend/internal/domain/ports"
)

// SlogLogger implementa ports.Logger com o slog do stdlib, emitindo
// JSON estruturado em stdout
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger cria um logger no nível pedido (debug, info, warn,
// error). Níveis desconhecidos caem em info.
func NewSlogLogger(level string) ports.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return &SlogLogger{logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}
