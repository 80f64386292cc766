package mock

import "github.com/mpontes/fatura"

var _ fatura.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of fatura.PageReader.
type PageReader struct {
	PageCountFn func() int
	PageTextFn  func(pageNum int) (string, error)
	CloseFn     func() error
}

func (r *PageReader) PageCount() int {
	return r.PageCountFn()
}

func (r *PageReader) PageText(pageNum int) (string, error) {
	return r.PageTextFn(pageNum)
}

func (r *PageReader) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}

// Pages returns a PageReader serving the given page texts in order,
// 1-based. A convenience for tests that don't need custom behavior.
func Pages(texts ...string) *PageReader {
	return &PageReader{
		PageCountFn: func() int { return len(texts) },
		PageTextFn: func(pageNum int) (string, error) {
			return texts[pageNum-1], nil
		},
	}
}
