package payroll

import "context"

type PayrollRepository interface {
	CreateRecord(ctx context.Context, record PayrollRecord, ownerID string) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string, ownerID string) (PayrollRecord, error)
	ListRecords(ctx context.Context, ownerID string, filter RecordFilter) ([]PayrollRecord, int64, error)
	ConfirmRecord(ctx context.Context, id string, ownerID string) error
	DeleteRecord(ctx context.Context, id string, ownerID string) error
}
