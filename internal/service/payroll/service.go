package payroll

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/domain/employee"
	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	"github.com/agi040922/HR-Management-sub002/internal/domain/schedule"
	"github.com/agi040922/HR-Management-sub002/internal/domain/store"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	db           *database.DB
	calculator   *Calculator
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	storeRepo    store.StoreRepository
	scheduleSvc  schedule.ScheduleService
}

func NewPayrollService(
	db *database.DB,
	calculator *Calculator,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	storeRepo store.StoreRepository,
	scheduleSvc schedule.ScheduleService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		calculator:   calculator,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		scheduleSvc:  scheduleSvc,
	}
}

// Helper to get owner_id from JWT context
func getOwnerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	ownerID, ok := claims["owner_id"].(string)
	if !ok || ownerID == "" {
		return "", fmt.Errorf("owner_id claim is missing or invalid")
	}

	return ownerID, nil
}

// ========== COMPUTATION ==========

func (s *PayrollServiceImpl) ComputeStorePayroll(ctx context.Context, req payroll.ComputePayrollRequest) (payroll.StorePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StorePayrollResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return payroll.StorePayrollResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	result, err := s.computeStore(ctx, req.StoreID, ownerID, from, to)
	if err != nil {
		return payroll.StorePayrollResponse{}, err
	}

	return mapToStoreResponse(result, req.From, req.To), nil
}

func (s *PayrollServiceImpl) ComputeSummary(ctx context.Context, from, to string) (payroll.PayrollSummaryResponse, error) {
	if err := payroll.ValidatePeriod(from, to); err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	fromDate, _ := time.Parse("2006-01-02", from)
	toDate, _ := time.Parse("2006-01-02", to)

	stores, err := s.storeRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get stores: %w", err)
	}

	// Stores are independent inputs and the calculator is stateless, so
	// compute them concurrently.
	results := make([]payroll.StorePayrollData, len(stores))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, st := range stores {
		i, st := i, st
		g.Go(func() error {
			result, err := s.computeStore(gctx, st.ID, ownerID, fromDate, toDate)
			if err != nil {
				return fmt.Errorf("store %s: %w", st.ID, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	summary := payroll.PayrollSummaryResponse{
		From:   from,
		To:     to,
		Stores: make([]payroll.StorePayrollResponse, 0, len(results)),
	}
	grand := payroll.PayrollTotals{}
	for _, result := range results {
		summary.Stores = append(summary.Stores, mapToStoreResponse(result, from, to))
		grand = SumTotals(grand, result.Totals)
	}
	summary.GrandTotals = mapToTotalsResponse(grand)

	return summary, nil
}

// computeStore runs the full pipeline for one store: expand the schedule
// into shifts, aggregate per employee, price the hours, roll up.
func (s *PayrollServiceImpl) computeStore(ctx context.Context, storeID, ownerID string, from, to time.Time) (payroll.StorePayrollData, error) {
	st, err := s.storeRepo.GetByID(ctx, storeID, ownerID)
	if err != nil {
		return payroll.StorePayrollData{}, err
	}

	// Employees and shifts come from independent sources; fetch both at once.
	var employees []employee.Employee
	var shifts []schedule.Shift
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.GetActiveByStoreID(gctx, storeID, ownerID)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		shifts, err = s.scheduleSvc.ExpandShifts(gctx, storeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to expand shifts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.StorePayrollData{}, err
	}

	shiftsByEmployee := make(map[string][]schedule.Shift)
	for _, shift := range shifts {
		shiftsByEmployee[shift.EmployeeID] = append(shiftsByEmployee[shift.EmployeeID], shift)
	}

	data := make([]payroll.PayrollData, 0, len(employees))
	for _, emp := range employees {
		// An employee with no shifts still appears, with all-zero pay.
		week, err := s.calculator.AggregateWeek(shiftsByEmployee[emp.ID])
		if err != nil {
			return payroll.StorePayrollData{}, fmt.Errorf("employee %s: %w", emp.ID, err)
		}
		d := s.calculator.ComputePay(week, emp.HourlyWage)
		d.EmployeeID = emp.ID
		d.EmployeeName = emp.Name
		data = append(data, d)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].EmployeeName < data[j].EmployeeName })

	return payroll.StorePayrollData{
		StoreID:   st.ID,
		StoreName: st.Name,
		Data:      data,
		Totals:    Rollup(data),
	}, nil
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) SaveRecord(ctx context.Context, req payroll.SaveRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	result, err := s.computeStore(ctx, req.StoreID, ownerID, from, to)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record := payroll.PayrollRecord{
		StoreID:     req.StoreID,
		PeriodStart: from,
		PeriodEnd:   to,
		Status:      payroll.RecordStatusDraft,
		Data:        result.Data,
		Totals:      result.Totals,
	}

	created, err := s.payrollRepo.CreateRecord(ctx, record, ownerID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	created.StoreName = &result.StoreName

	return mapToRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, id, ownerID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) (payroll.ListPayrollRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	records, totalCount, err := s.payrollRepo.ListRecords(ctx, ownerID, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	result := payroll.ListPayrollRecordResponse{
		Data:       make([]payroll.PayrollRecordResponse, 0, len(records)),
		TotalCount: totalCount,
	}
	for _, r := range records {
		result.Data = append(result.Data, mapToRecordResponse(r))
	}
	return result, nil
}

func (s *PayrollServiceImpl) ConfirmRecord(ctx context.Context, id string) error {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.ConfirmRecord(ctx, id, ownerID)
}

func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	ownerID, err := getOwnerIDFromContext(ctx)
	if err != nil {
		return err
	}

	return s.payrollRepo.DeleteRecord(ctx, id, ownerID)
}

// ========== HELPERS ==========

func mapToDataResponse(d payroll.PayrollData) payroll.PayrollDataResponse {
	return payroll.PayrollDataResponse{
		EmployeeID:              d.EmployeeID,
		EmployeeName:            d.EmployeeName,
		WeeklyHours:             d.WeeklyHours,
		RegularHours:            d.RegularHours,
		OvertimeHours:           d.OvertimeHours,
		NightHours:              d.NightHours,
		RegularPay:              d.RegularPay,
		OvertimePay:             d.OvertimePay,
		NightPay:                d.NightPay,
		HolidayPay:              d.HolidayPay,
		TotalPay:                d.TotalPay,
		IsEligibleForHolidayPay: d.IsEligibleForHolidayPay,
		MonthlySalary:           d.MonthlySalary,
		NetSalary:               d.NetSalary,
	}
}

func mapToTotalsResponse(t payroll.PayrollTotals) payroll.PayrollTotalsResponse {
	return payroll.PayrollTotalsResponse{
		TotalEmployees: t.TotalEmployees,
		WeeklyHours:    t.WeeklyHours,
		RegularHours:   t.RegularHours,
		OvertimeHours:  t.OvertimeHours,
		NightHours:     t.NightHours,
		RegularPay:     t.RegularPay,
		OvertimePay:    t.OvertimePay,
		NightPay:       t.NightPay,
		HolidayPay:     t.HolidayPay,
		TotalPay:       t.TotalPay,
		MonthlySalary:  t.MonthlySalary,
		NetSalary:      t.NetSalary,
	}
}

func mapToStoreResponse(result payroll.StorePayrollData, from, to string) payroll.StorePayrollResponse {
	resp := payroll.StorePayrollResponse{
		StoreID:   result.StoreID,
		StoreName: result.StoreName,
		From:      from,
		To:        to,
		Data:      make([]payroll.PayrollDataResponse, 0, len(result.Data)),
		Totals:    mapToTotalsResponse(result.Totals),
	}
	for _, d := range result.Data {
		resp.Data = append(resp.Data, mapToDataResponse(d))
	}
	return resp
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var confirmedAtStr *string
	if r.ConfirmedAt != nil {
		str := r.ConfirmedAt.Format(time.RFC3339)
		confirmedAtStr = &str
	}

	storeName := ""
	if r.StoreName != nil {
		storeName = *r.StoreName
	}

	resp := payroll.PayrollRecordResponse{
		ID:          r.ID,
		StoreID:     r.StoreID,
		StoreName:   storeName,
		PeriodStart: r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   r.PeriodEnd.Format("2006-01-02"),
		Status:      string(r.Status),
		Data:        make([]payroll.PayrollDataResponse, 0, len(r.Data)),
		Totals:      mapToTotalsResponse(r.Totals),
		ConfirmedAt: confirmedAtStr,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	for _, d := range r.Data {
		resp.Data = append(resp.Data, mapToDataResponse(d))
	}
	return resp
}
