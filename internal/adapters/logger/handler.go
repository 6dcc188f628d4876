package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/scriptmerge/internal/ui/output"
	"go.trai.ch/scriptmerge/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing coloured, human-readable lines.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs are rendered once in WithAttrs, already carrying their group prefix.
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a PrettyHandler writing to w. The level is read on every
// record, so a *slog.LevelVar in opts can change it later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(formatAttr(h.prefix, attr))
		return true
	})

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]string, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, formatAttr(h.prefix, attr))
	}
	return &next
}

// WithGroup returns a new Handler whose later attributes are qualified by name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level < slog.LevelInfo:
		return style.Dot, style.Iris
	default:
		return "", style.Slate
	}
}

func formatAttr(prefix string, attr slog.Attr) string {
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\n\"") {
		value = strconv.Quote(value)
	}
	return prefix + attr.Key + "=" + value
}
