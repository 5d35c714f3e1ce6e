// Package logging builds the structured loggers used across the engine.
// Each logger carries a component name and colors its level label.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gookit/color"
)

// Component styles
var (
	StyleEngine  = color.Style{color.FgCyan, color.OpBold}
	StyleGame    = color.Style{color.FgGreen, color.OpBold}
	StyleStorage = color.Style{color.FgMagenta}
	StyleServer  = color.Style{color.FgBlue}
)

var levelStyles = map[slog.Level]color.Style{
	slog.LevelDebug: {color.FgGray},
	slog.LevelInfo:  {color.FgGreen},
	slog.LevelWarn:  {color.FgYellow, color.OpBold},
	slog.LevelError: {color.FgRed, color.OpBold},
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w. The component name is rendered
// with style and attached to every record.
func New(component string, style color.Style, w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			if st, found := levelStyles[lvl]; found {
				return slog.String(slog.LevelKey, st.Sprint(lvl.String()))
			}
			return a
		},
	})
	return slog.New(h).With(slog.String("component", style.Sprint(component)))
}

// Discard returns a logger that drops everything, for tests and library defaults.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
