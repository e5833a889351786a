package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agi040922/HR-Management-sub002/internal/pkg/database"
)

type ScheduleJobs struct {
	db *database.DB
}

func NewScheduleJobs(db *database.DB) *ScheduleJobs {
	return &ScheduleJobs{db: db}
}

func (j *ScheduleJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("audit_template_assignments", 1*time.Hour, j.AuditTemplateAssignments)
	scheduler.AddJob("purge_stale_exceptions", 1*time.Hour, j.PurgeStaleExceptions)
}

// AuditTemplateAssignments flags active template slots that still assign
// employees who have since been deactivated or removed. The slot keeps
// working (the expansion skips nobody), this only surfaces the drift to
// the logs so the owner can clean the template up.
func (j *ScheduleJobs) AuditTemplateAssignments(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting template assignment audit")

	query := `
		SELECT wt.id, wt.store_id, ts.day_of_week, e.id, e.name
		FROM weekly_templates wt
		JOIN template_slots ts ON ts.template_id = wt.id
		JOIN employees e ON e.id = ANY(ts.employee_ids)
		WHERE wt.is_active = true AND wt.deleted_at IS NULL
			AND (e.is_active = false OR e.deleted_at IS NOT NULL)
	`

	rows, err := j.db.Pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to audit template assignments: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var templateID, storeID, employeeID, employeeName string
		var dayOfWeek int
		if err := rows.Scan(&templateID, &storeID, &dayOfWeek, &employeeID, &employeeName); err != nil {
			return fmt.Errorf("failed to scan audit row: %w", err)
		}
		slog.Warn("Cron: Template slot assigns inactive employee",
			"template_id", templateID,
			"store_id", storeID,
			"day_of_week", dayOfWeek,
			"employee_id", employeeID,
			"employee_name", employeeName,
		)
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	slog.Info("Cron: Template assignment audit completed", "stale_assignments", count)
	return nil
}

// PurgeStaleExceptions removes schedule exceptions older than the
// retention window. Confirmed payroll records snapshot their inputs, so
// old exceptions are only needed while a period can still be recomputed.
func (j *ScheduleJobs) PurgeStaleExceptions(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	cutoff := time.Now().UTC().AddDate(0, -6, 0)

	tag, err := j.db.Pool.Exec(ctx,
		`DELETE FROM schedule_exceptions WHERE date < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge stale exceptions: %w", err)
	}

	if tag.RowsAffected() > 0 {
		slog.Info("Cron: Purged stale schedule exceptions", "deleted", tag.RowsAffected(), "cutoff", cutoff.Format("2006-01-02"))
	}
	return nil
}
