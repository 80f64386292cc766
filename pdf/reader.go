// Package pdf provides a PDF-backed implementation of fatura.PageReader.
// It uses ledongthuc/pdf (pure Go, no CGO) for per-page text extraction.
package pdf

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/mpontes/fatura"
)

// Ensure Reader implements fatura.PageReader at compile time.
var _ fatura.PageReader = (*Reader)(nil)

// Reader reads per-page plain text from a PDF file.
type Reader struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF document at path. Failing to open the document is the
// one fatal error of a run; per-page problems are handled in PageText.
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %q: %w", path, err)
	}
	return &Reader{f: f, r: r}, nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.r.NumPage()
}

// PageText returns the plain text of the given 1-based page. Pages the
// library cannot decode yield an empty string so that callers skip them
// instead of failing the run.
func (r *Reader) PageText(pageNum int) (string, error) {
	page := r.r.Page(pageNum)
	if page.V.IsNull() {
		return "", nil
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", nil
	}
	return text, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
