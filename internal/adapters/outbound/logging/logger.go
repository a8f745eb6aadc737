// Package logging builds the slog logger used by the long-running commands.
package logging

import (
	"io"
	"log/slog"

	"github.com/euvat/euvat/internal/domain"
)

// New returns a logger writing to w in the configured format.
func New(format string, w io.Writer) *slog.Logger {
	if format == domain.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true}))
}
