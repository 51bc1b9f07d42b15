package ports

// Logger é a porta de logging estruturado usada pelos serviços.
// Os args seguem a convenção chave-valor do slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}
