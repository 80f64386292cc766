// Package process orchestrates page-by-page extraction of billing records
// from a source document. It coordinates page classification, text
// normalization, the field extractors and the output sink.
package process

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/mpontes/fatura"
	"golang.org/x/sync/errgroup"
)

// Processor drives the per-page pipeline: classify, normalize, extract in
// dependency order, emit. Pages are independent of each other; the only
// cross-page state is the output sink.
type Processor struct {
	Reader fatura.PageReader
	Writer fatura.RecordWriter

	// Records, when set, additionally persists every emitted record.
	Records fatura.RecordService

	// Source identifies the input document in persisted records.
	Source string

	Logger *slog.Logger

	// Concurrency sets how many pages are extracted in parallel. Values
	// below two keep processing sequential. Records are flushed to the
	// writer in ascending page order either way.
	Concurrency int
}

// Result holds the outcome of a processing run.
type Result struct {
	Pages   int // pages in the source document
	Emitted int // records written to the sink
	Skipped int // unreadable or non-invoice pages
}

// ProgressEvent reports progress during a processing run.
type ProgressEvent struct {
	Type      ProgressType
	Page      int
	Completed int
	Total     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressEmitted
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting processing progress.
type ProgressFunc func(event ProgressEvent)

// Run processes every page of the reader and writes one record per
// accepted page. The progress callback, if provided, receives events as
// pages are emitted or skipped.
func (p *Processor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	total := p.Reader.PageCount()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	if err := p.Writer.WriteHeader(ctx); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	records, err := p.extractAll(ctx, total)
	if err != nil {
		return nil, err
	}

	// Ordered flush. Extraction may have run concurrently, but emission
	// follows page order so reruns produce byte-identical output.
	result := &Result{Pages: total}
	for i, rec := range records {
		page := i + 1
		if rec == nil {
			result.Skipped++
			logger.Debug("page skipped", "page", page)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Page:      page,
					Completed: page,
					Total:     total,
				})
			}
			continue
		}

		if err := p.Writer.WriteRecord(ctx, rec); err != nil {
			return nil, fmt.Errorf("write record for page %d: %w", page, err)
		}
		if p.Records != nil {
			if err := p.Records.CreateRecord(ctx, rec); err != nil {
				return nil, fmt.Errorf("persist record for page %d: %w", page, err)
			}
		}

		result.Emitted++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressEmitted,
				Page:      page,
				Completed: page,
				Total:     total,
			})
		}
	}

	if err := p.Writer.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	logger.Info("processing finished",
		"pages", result.Pages,
		"emitted", result.Emitted,
		"skipped", result.Skipped,
	)

	return result, nil
}

// extractAll extracts every page, optionally in parallel. The returned
// slice has one entry per page; nil entries mark skipped pages.
func (p *Processor) extractAll(ctx context.Context, total int) ([]*fatura.Record, error) {
	records := make([]*fatura.Record, total)

	if p.Concurrency > 1 {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(p.Concurrency)
		for i := 0; i < total; i++ {
			g.Go(func() error {
				rec, err := p.extractPage(i + 1)
				if err != nil {
					return err
				}
				records[i] = rec
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return records, nil
	}

	for i := 0; i < total; i++ {
		rec, err := p.extractPage(i + 1)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// extractPage turns one page into a record, or nil when the page is empty
// or fails classification. A missing field is an expected outcome and
// leaves the field empty; only reader failures surface as errors.
func (p *Processor) extractPage(pageNum int) (*fatura.Record, error) {
	text, err := p.Reader.PageText(pageNum)
	if err != nil {
		return nil, fmt.Errorf("read page %d: %w", pageNum, err)
	}
	if text == "" {
		return nil, nil
	}
	if !fatura.IsInvoicePage(text) {
		return nil, nil
	}

	norm := fatura.Normalize(text)

	// The billing period is anchored to the account identifier, so the
	// account extractor must run first.
	accountID, _ := fatura.ExtractAccountID(norm)
	period, _ := fatura.ExtractBillingPeriod(norm, accountID)
	amount, _ := fatura.ExtractTotalAmount(norm)
	tax := fatura.ExtractWithheldTax(text)
	consumption, _ := fatura.ExtractConsumption(text)

	return &fatura.Record{
		Source:         p.Source,
		Page:           pageNum,
		AccountID:      accountID,
		BillingPeriod:  period,
		ConsumptionKWH: consumption,
		TotalAmount:    amount,
		WithheldTax:    tax,
		PageHash:       hashText(text),
	}, nil
}

// hashText computes the xxHash of a page's raw text as a hex string.
func hashText(text string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(text))
	return hex.EncodeToString(b)
}
