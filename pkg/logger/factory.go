package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger on stdout at info level.
// The slug operation from context is always extracted; extra extractors are appended.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, slog.LevelInfo, extractors...)
}

// NewWithWriter creates a JSON logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Leveler, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewLogHandlerDecorator(h, withOperation(extractors)...))
}

func withOperation(extractors []ContextExtractor) []ContextExtractor {
	return append([]ContextExtractor{OperationExtractor}, extractors...)
}
