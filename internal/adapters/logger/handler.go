package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"go.trai.ch/specred/internal/ui/output"
	"go.trai.ch/specred/internal/ui/style"
)

// prettyHandler writes one colored line per record. The logger only emits plain messages, so
// attributes and groups are ignored.
type prettyHandler struct {
	out   *termenv.Output
	level slog.Level
}

func newPrettyHandler(w io.Writer, level slog.Level) *prettyHandler {
	return &prettyHandler{out: output.New(w), level: level}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	msg, color := r.Message, termenv.RGBColor(string(style.Slate))
	switch {
	case r.Level >= slog.LevelError:
		msg, color = style.Cross+" "+msg, termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg, color = style.Warning+" "+msg, termenv.RGBColor(string(style.Yellow))
	}

	_, err := h.out.WriteString(h.out.String(msg).Foreground(color).String() + "\n")
	return err
}

func (h *prettyHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *prettyHandler) WithGroup(string) slog.Handler { return h }
