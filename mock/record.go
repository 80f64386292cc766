package mock

import (
	"context"

	"github.com/mpontes/fatura"
)

var _ fatura.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of fatura.RecordService.
type RecordService struct {
	CreateRecordFn          func(ctx context.Context, rec *fatura.Record) error
	FindRecordByIDFn        func(ctx context.Context, id string) (*fatura.Record, error)
	FindRecordsFn           func(ctx context.Context, filter fatura.RecordFilter) ([]*fatura.Record, error)
	DeleteRecordsBySourceFn func(ctx context.Context, source string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *fatura.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*fatura.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter fatura.RecordFilter) ([]*fatura.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsBySource(ctx context.Context, source string) error {
	return s.DeleteRecordsBySourceFn(ctx, source)
}
