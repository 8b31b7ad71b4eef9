package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger is the printf-style interface the calculation engine logs through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Nop implements Logger with no output.
type Nop struct{}

func (Nop) Debugf(format string, args ...any) {}
func (Nop) Infof(format string, args ...any)  {}
func (Nop) Warnf(format string, args ...any)  {}
func (Nop) Errorf(format string, args ...any) {}

// ParseLevel maps a level name to a slog level. Unknown names return info and ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds a slog logger writing to w. JSON output is used when json is true, text otherwise.
func New(w io.Writer, levelName string, json bool) *slog.Logger {
	level, ok := ParseLevel(levelName)
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	l := slog.New(handler)
	if !ok {
		l.Warn("invalid log level, defaulting to info", "configuredLevel", levelName)
	}
	return l
}

// SlogAdapter exposes a *slog.Logger through the Logger interface.
type SlogAdapter struct {
	L *slog.Logger
}

// NewSlogAdapter wraps l. A nil logger falls back to slog.Default().
func NewSlogAdapter(l *slog.Logger) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	return &SlogAdapter{L: l}
}

func (a *SlogAdapter) Debugf(format string, args ...any) { a.log(slog.LevelDebug, format, args...) }
func (a *SlogAdapter) Infof(format string, args ...any)  { a.log(slog.LevelInfo, format, args...) }
func (a *SlogAdapter) Warnf(format string, args ...any)  { a.log(slog.LevelWarn, format, args...) }
func (a *SlogAdapter) Errorf(format string, args ...any) { a.log(slog.LevelError, format, args...) }

func (a *SlogAdapter) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !a.L.Enabled(ctx, level) {
		return
	}
	a.L.Log(ctx, level, fmt.Sprintf(format, args...))
}
