package payroll

import "context"

type PayrollService interface {
	// Pure computation over the current schedule
	ComputeStorePayroll(ctx context.Context, req ComputePayrollRequest) (StorePayrollResponse, error)
	ComputeSummary(ctx context.Context, from, to string) (PayrollSummaryResponse, error)

	// Persisted snapshots
	SaveRecord(ctx context.Context, req SaveRecordRequest) (PayrollRecordResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) (ListPayrollRecordResponse, error)
	ConfirmRecord(ctx context.Context, id string) error
	DeleteRecord(ctx context.Context, id string) error
}
