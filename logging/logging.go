// Package logging provides the line-oriented slog handler used by the lvroute
// command and a parser for textual log levels.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// timeLayout is the prefix of every record.
const timeLayout = "2006/01/02 15:04:05"

// Handler writes one line per record:
//
//	2006/01/02 15:04:05 INFO msg key=value key=value
//
// Level filtering and attribute/group bookkeeping are delegated to an inner
// slog.TextHandler; Handler only owns the line format. Safe for concurrent use.
type Handler struct {
	inner  slog.Handler
	attrs  []slog.Attr
	prefix string
	mu     *sync.Mutex
	out    io.Writer
}

// NewHandler returns a Handler writing to out. A nil opts logs at Info.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	return &Handler{
		inner: slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}),
		mu:    &sync.Mutex{},
		out:   out,
	}
}

// Enabled reports whether records at level are written.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// WithAttrs returns a Handler that prepends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.inner = h.inner.WithAttrs(attrs)
	cp.attrs = append(append([]slog.Attr(nil), h.attrs...), qualify(h.prefix, attrs)...)

	return &cp
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.inner = h.inner.WithGroup(name)
	cp.prefix = h.prefix + name + "."

	return &cp
}

// Handle formats r and writes it as a single line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())

	return err
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, sub, ga)
		}
		return
	}

	val := a.Value.String()
	if strings.ContainsAny(val, " \t\"=") {
		val = fmt.Sprintf("%q", val)
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(val)
}

func qualify(prefix string, attrs []slog.Attr) []slog.Attr {
	if prefix == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}

	return out
}

// ParseLevel maps debug, info, warn (or warning) and error, in any case, to
// the slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New returns a logger that writes to out at the named level.
func New(out io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(NewHandler(out, &slog.HandlerOptions{Level: lvl})), nil
}
