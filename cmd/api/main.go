package main

import (
	"fmt"
	"net/http"

	"github.com/agi040922/HR-Management-sub002/internal/config"
	"github.com/agi040922/HR-Management-sub002/internal/domain/payroll"
	appHTTP "github.com/agi040922/HR-Management-sub002/internal/handler/http"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/cron"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
	"github.com/agi040922/HR-Management-sub002/internal/pkg/jwt"
	"github.com/agi040922/HR-Management-sub002/internal/repository/postgresql"
	employeeService "github.com/agi040922/HR-Management-sub002/internal/service/employee"
	payrollService "github.com/agi040922/HR-Management-sub002/internal/service/payroll"
	scheduleService "github.com/agi040922/HR-Management-sub002/internal/service/schedule"
	storeService "github.com/agi040922/HR-Management-sub002/internal/service/store"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	storeRepo := postgresql.NewStoreRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	templateRepo := postgresql.NewWeeklyTemplateRepository(db)
	exceptionRepo := postgresql.NewScheduleExceptionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	policy := payroll.Policy{
		MinimumWage:                      decimal.NewFromInt(cfg.Payroll.MinimumWage),
		HolidayPayEligibilityWeeklyHours: cfg.Payroll.HolidayPayEligibilityWeeklyHours,
		OvertimeWeeklyThresholdHours:     cfg.Payroll.OvertimeWeeklyThresholdHours,
		OvertimeDailyThresholdHours:      cfg.Payroll.OvertimeDailyThresholdHours,
		OvertimeMultiplier:               cfg.Payroll.OvertimeMultiplier,
		NightDifferentialMultiplier:      cfg.Payroll.NightDifferentialMultiplier,
		NightWindowStart:                 cfg.Payroll.NightWindowStart,
		NightWindowEnd:                   cfg.Payroll.NightWindowEnd,
		AverageWeeksPerMonth:             cfg.Payroll.AverageWeeksPerMonth,
		InsuranceRate:                    cfg.Payroll.InsuranceRate,
		IncomeTaxRate:                    cfg.Payroll.IncomeTaxRate,
		NightBreakAdjusted:               cfg.Payroll.NightBreakAdjusted,
	}
	calculator := payrollService.NewCalculator(policy)

	storeSvc := storeService.NewStoreService(db, storeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, storeRepo, policy)
	scheduleSvc := scheduleService.NewScheduleService(db, templateRepo, exceptionRepo, storeRepo)
	payrollSvc := payrollService.NewPayrollService(db, calculator, payrollRepo, employeeRepo, storeRepo, scheduleSvc)

	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		storeHandler,
		employeeHandler,
		scheduleHandler,
		payrollHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewScheduleJobs(db).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
