// Package xlsx provides an XLSX workbook implementation of
// fatura.RecordWriter backed by excelize.
package xlsx

import (
	"context"
	"fmt"
	"io"

	"github.com/mpontes/fatura"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements fatura.RecordWriter at compile time.
var _ fatura.RecordWriter = (*Writer)(nil)

// Sheet is the worksheet that receives the records.
const Sheet = "Faturas"

// Writer accumulates records into an in-memory workbook. Call SaveAs or
// WriteTo after Flush to produce the file.
type Writer struct {
	f   *excelize.File
	row int
}

// NewWriter creates a Writer with an empty workbook.
func NewWriter() (*Writer, error) {
	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(Sheet); index == -1 {
		if _, err := f.NewSheet(Sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(Sheet)
	f.SetActiveSheet(activeIndex)
	return &Writer{f: f, row: 1}, nil
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader(ctx context.Context) error {
	if err := w.writeRow(fatura.Header); err != nil {
		return err
	}
	// Widen the account and amount columns so values aren't clipped.
	_ = w.f.SetColWidth(Sheet, "B", "B", 16)
	_ = w.f.SetColWidth(Sheet, "E", "E", 14)
	return nil
}

// WriteRecord validates the record and appends it as one row.
func (w *Writer) WriteRecord(ctx context.Context, rec *fatura.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return w.writeRow(rec.Row())
}

// Flush is a no-op; the workbook lives in memory until saved.
func (w *Writer) Flush() error {
	return nil
}

// SaveAs writes the workbook to the given path.
func (w *Writer) SaveAs(path string) error {
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteTo writes the workbook to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	return w.f.WriteTo(out)
}

// Close releases workbook resources.
func (w *Writer) Close() error {
	return w.f.Close()
}

func (w *Writer) writeRow(values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.f.SetCellValue(Sheet, cell, v); err != nil {
			return err
		}
	}
	w.row++
	return nil
}
