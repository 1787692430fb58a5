package logx

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pkt.systems/pslog"
)

// Console returns the human-readable logger used by non-interactive
// commands. PSLOG_* environment variables can override its options.
func Console(w io.Writer) pslog.Logger {
	return pslog.LoggerFromEnv(
		pslog.WithEnvWriter(w),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
}

// Structured returns a JSON logger writing to w.
func Structured(w io.Writer, debug bool) pslog.Logger {
	level := pslog.InfoLevel
	if debug {
		level = pslog.DebugLevel
	}
	return pslog.NewWithOptions(w, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      level,
		VerboseFields: true,
	})
}

// Discard returns a logger that drops everything. The editor owns the
// terminal while it runs, so without a log file nothing may reach stderr.
func Discard() pslog.Logger {
	return Structured(io.Discard, false)
}

// OpenFile appends structured logs to path, creating parent directories.
// The returned closer must be closed once the program exits.
func OpenFile(path string, debug bool) (pslog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return Structured(f, debug), f, nil
}

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithDocument annotates the logger with the document path when known.
func WithDocument(log pslog.Logger, path string) pslog.Logger {
	if path == "" {
		return log.With("doc", "(scratch)")
	}
	return log.With("doc", path)
}
