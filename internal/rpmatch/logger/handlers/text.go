package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

// TextHandler writes records as "time level message key=value..." lines for humans.
type TextHandler struct {
	slog.Handler
	l *log.Logger
}

func (h *TextHandler) Handle(_ context.Context, r slog.Record) error {
	parts := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message}

	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s=%v", a.Key, a.Value.Any()))

		return true
	})

	h.l.Println(strings.Join(parts, " "))

	return nil
}

func NewTextHandler(out io.Writer, options *slog.HandlerOptions) *TextHandler {
	return &TextHandler{
		Handler: slog.NewTextHandler(out, options),
		l:       log.New(out, "", 0),
	}
}
