package fatura

// PageReader yields the plain text of each page of a source document.
// Implementations hide the underlying document format.
type PageReader interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the text of the given 1-based page. An unreadable
	// page yields an empty string, not an error; errors are reserved for
	// reader-level failures.
	PageText(pageNum int) (string, error)

	// Close releases the underlying document resources.
	// Must be called when the PageReader is no longer needed.
	Close() error
}
