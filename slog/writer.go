// Package slog provides logging decorators for fatura interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mpontes/fatura"
)

// Ensure LoggingWriter implements fatura.RecordWriter.
var _ fatura.RecordWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a RecordWriter and logs every emitted record.
type LoggingWriter struct {
	next   fatura.RecordWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next fatura.RecordWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteHeader delegates to the wrapped writer.
func (w *LoggingWriter) WriteHeader(ctx context.Context) error {
	return w.next.WriteHeader(ctx)
}

// WriteRecord writes the record, then logs the emitted fields.
func (w *LoggingWriter) WriteRecord(ctx context.Context, rec *fatura.Record) error {
	begin := time.Now()
	if err := w.next.WriteRecord(ctx, rec); err != nil {
		return err
	}
	w.logger.Info("record emitted",
		"page", rec.Page,
		"account_id", rec.AccountID,
		"billing_period", rec.BillingPeriod,
		"duration", time.Since(begin),
	)
	return nil
}

// Flush delegates to the wrapped writer.
func (w *LoggingWriter) Flush() error {
	return w.next.Flush()
}
