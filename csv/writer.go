// Package csv provides a delimited-text implementation of
// fatura.RecordWriter on top of encoding/csv.
package csv

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/mpontes/fatura"
)

// Ensure Writer implements fatura.RecordWriter at compile time.
var _ fatura.RecordWriter = (*Writer)(nil)

// utf8BOM is written before the header so spreadsheet applications pick up
// the encoding; the output contract is UTF-8 with optional signature.
const utf8BOM = "\ufeff"

// Writer writes records as semicolon-delimited rows.
type Writer struct {
	out io.Writer
	w   *csv.Writer
}

// NewWriter creates a Writer emitting to out.
func NewWriter(out io.Writer) *Writer {
	w := csv.NewWriter(out)
	w.Comma = ';'
	w.UseCRLF = true
	return &Writer{out: out, w: w}
}

// WriteHeader writes the byte-order mark and the column header row.
func (w *Writer) WriteHeader(ctx context.Context) error {
	if _, err := io.WriteString(w.out, utf8BOM); err != nil {
		return err
	}
	return w.w.Write(fatura.Header)
}

// WriteRecord validates the record and writes it as one row.
func (w *Writer) WriteRecord(ctx context.Context, rec *fatura.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return w.w.Write(rec.Row())
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
