package fatura

import (
	"context"
	"regexp"
	"strconv"
	"time"
)

// Header is the column header row emitted once before any records.
// Column order matches Record field order in Row.
var Header = []string{"Page", "AccountId", "BillingPeriod", "Consumption_kWh", "TotalAmount", "WithheldTax_1_20"}

// Record represents the billing data extracted from one invoice page.
// Field values keep the Brazilian number formatting found on the bill
// (comma decimal separator, dot thousands separator); downstream consumers
// own numeric interpretation. Empty string means the field was not found
// on the page, which is a valid outcome, not an error.
type Record struct {
	ID     string `json:"id"`
	Source string `json:"source"`

	// Page is the 1-based page number within the source document.
	Page int `json:"page"`

	AccountID      string `json:"accountId"`
	BillingPeriod  string `json:"billingPeriod"`  // MM/YYYY
	ConsumptionKWH string `json:"consumptionKwh"` // two decimals, comma separator
	TotalAmount    string `json:"totalAmount"`
	WithheldTax    string `json:"withheldTax"` // never empty, "0,00" when absent

	// PageHash identifies the raw page text the record was extracted from.
	PageHash    string    `json:"pageHash"`
	ExtractedAt time.Time `json:"extractedAt"`
}

var (
	digitsOnlyRe  = regexp.MustCompile(`^[0-9]+$`)
	periodFieldRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{4}$`)
	kwhFieldRe    = regexp.MustCompile(`^[0-9]+,[0-9]{2}$`)
)

// Validate returns an error if the record violates its field invariants.
func (r *Record) Validate() error {
	if r.Page < 1 {
		return Errorf(EINVALID, "record page number must be positive")
	}
	if r.AccountID != "" && !digitsOnlyRe.MatchString(r.AccountID) {
		return Errorf(EINVALID, "record account ID must contain only digits")
	}
	if r.BillingPeriod != "" && !periodFieldRe.MatchString(r.BillingPeriod) {
		return Errorf(EINVALID, "record billing period must be MM/YYYY")
	}
	if r.ConsumptionKWH != "" && !kwhFieldRe.MatchString(r.ConsumptionKWH) {
		return Errorf(EINVALID, "record consumption must have two decimals with comma separator")
	}
	if r.WithheldTax == "" {
		return Errorf(EINVALID, "record withheld tax required")
	}
	return nil
}

// Row returns the record's output fields in Header order.
// The page number is rendered in decimal.
func (r *Record) Row() []string {
	return []string{
		strconv.Itoa(r.Page),
		r.AccountID,
		r.BillingPeriod,
		r.ConsumptionKWH,
		r.TotalAmount,
		r.WithheldTax,
	}
}

// RecordWriter writes extracted records to an output sink in page order.
// WriteHeader must be called exactly once, before any WriteRecord call.
type RecordWriter interface {
	WriteHeader(ctx context.Context) error
	WriteRecord(ctx context.Context, rec *Record) error

	// Flush finalizes the output. No writes may follow.
	Flush() error
}

// RecordService represents a service for managing persisted records.
type RecordService interface {
	// CreateRecord persists a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, ordered by
	// source then page number.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsBySource removes all records extracted from a source.
	DeleteRecordsBySource(ctx context.Context, source string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID            *string `json:"id"`
	Source        *string `json:"source"`
	AccountID     *string `json:"accountId"`
	BillingPeriod *string `json:"billingPeriod"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
