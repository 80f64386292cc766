package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mpontes/fatura"
)

// Compile-time interface verification.
var _ fatura.RecordService = (*RecordService)(nil)

// RecordService implements fatura.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = "id, source, page, account_id, billing_period, consumption_kwh, total_amount, withheld_tax, page_hash, extracted_at"

// CreateRecord persists a new record, assigning its ID and timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, rec *fatura.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ExtractedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Source, rec.Page, rec.AccountID, rec.BillingPeriod, rec.ConsumptionKWH,
		rec.TotalAmount, rec.WithheldTax, rec.PageHash, rec.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*fatura.Record, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fatura.Errorf(fatura.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, ordered by source
// then page number.
func (s *RecordService) FindRecords(ctx context.Context, filter fatura.RecordFilter) ([]*fatura.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.AccountID != nil {
		query.WriteString(" AND account_id = ?")
		args = append(args, *filter.AccountID)
	}
	if filter.BillingPeriod != nil {
		query.WriteString(" AND billing_period = ?")
		args = append(args, *filter.BillingPeriod)
	}

	query.WriteString(" ORDER BY source ASC, page ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*fatura.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// DeleteRecordsBySource removes all records extracted from a source.
func (s *RecordService) DeleteRecordsBySource(ctx context.Context, source string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE source = ?", source)
	return err
}

// scanRecord scans one row in recordColumns order.
func scanRecord(scan func(dest ...any) error) (*fatura.Record, error) {
	var rec fatura.Record
	var extractedAt string

	if err := scan(&rec.ID, &rec.Source, &rec.Page, &rec.AccountID, &rec.BillingPeriod,
		&rec.ConsumptionKWH, &rec.TotalAmount, &rec.WithheldTax, &rec.PageHash, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	rec.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
	}

	return &rec, nil
}
