package application

import "log/slog"

// ResolveLogger falls back to the process default when wiring passes nil.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	return ResolveLogger(logger)
}
