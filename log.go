package fsa

import "log/slog"

// Logger receives debug records from the transformations (state and
// transition counts). It defaults to slog.Default().
var Logger = slog.Default()

// SetLogger replaces Logger; a nil logger restores slog.Default().
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	Logger = logger
}
