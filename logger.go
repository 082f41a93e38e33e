package ngx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled
// returns false so callers skip formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ngx and its sub-packages. By
// default ngx produces no log output. Pass nil to restore silence.
//
// Log levels used by ngx:
//   - [slog.LevelDebug]: per-evaluation diagnostics (entry counts, result codes)
//   - [slog.LevelInfo]: lifecycle events (system initialised, feature created)
//   - [slog.LevelWarn]: non-fatal failures (shutdown or release errors)
//
// Example:
//
//	ngx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (backend/..., vkres)
// call it to share the configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
