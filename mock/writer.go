package mock

import (
	"context"

	"github.com/mpontes/fatura"
)

var _ fatura.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of fatura.RecordWriter.
type RecordWriter struct {
	WriteHeaderFn func(ctx context.Context) error
	WriteRecordFn func(ctx context.Context, rec *fatura.Record) error
	FlushFn       func() error
}

func (w *RecordWriter) WriteHeader(ctx context.Context) error {
	if w.WriteHeaderFn == nil {
		return nil
	}
	return w.WriteHeaderFn(ctx)
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec *fatura.Record) error {
	return w.WriteRecordFn(ctx, rec)
}

func (w *RecordWriter) Flush() error {
	if w.FlushFn == nil {
		return nil
	}
	return w.FlushFn()
}
