package report

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Row types local to reporting. Reads here span the employee, session and
// break tables, so the repo maps them directly instead of importing the
// owning packages' entities.

type EmployeeRow struct {
	ID      string `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name"`
	Email   string `gorm:"column:email"`
	IsAdmin bool   `gorm:"column:is_admin"`
}

func (EmployeeRow) TableName() string {
	return "employees"
}

type EntryRow struct {
	ID         uint       `gorm:"column:id;primaryKey"`
	EmployeeID string     `gorm:"column:employee_id"`
	ClockIn    time.Time  `gorm:"column:clock_in"`
	ClockOut   *time.Time `gorm:"column:clock_out"`
	TotalHours *float64   `gorm:"column:total_hours"`
}

func (EntryRow) TableName() string {
	return "time_entries"
}

type BreakRow struct {
	ID              uint       `gorm:"column:id;primaryKey"`
	EmployeeID      string     `gorm:"column:employee_id"`
	StartTime       time.Time  `gorm:"column:start_time"`
	EndTime         *time.Time `gorm:"column:end_time"`
	DurationMinutes *int       `gorm:"column:duration_minutes"`
}

func (BreakRow) TableName() string {
	return "lunch_breaks"
}

// StatusSnapshot is one consistent view of an employee's current state.
type StatusSnapshot struct {
	Employee    EmployeeRow
	ClockInTime *time.Time
	OnLunch     bool
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	GetStatusSnapshot(ctx context.Context, employeeID string) (*StatusSnapshot, error)
	FindRecentEntries(ctx context.Context, employeeID string, limit int) ([]EntryRow, error)
	FindBreaksByEmployee(ctx context.Context, employeeID string) ([]BreakRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetStatusSnapshot reads the employee record and both open-state rows in a
// single transaction, so the composed status never mixes two points in time.
func (r *repository) GetStatusSnapshot(ctx context.Context, employeeID string) (*StatusSnapshot, error) {
	var snap StatusSnapshot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&snap.Employee, "id = ?", employeeID).Error; err != nil {
			return err
		}

		var entry EntryRow
		err := tx.
			Where("employee_id = ?", employeeID).
			Where("clock_out IS NULL").
			First(&entry).Error
		if err == nil {
			t := entry.ClockIn
			snap.ClockInTime = &t
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var lb BreakRow
		err = tx.
			Where("employee_id = ?", employeeID).
			Where("end_time IS NULL").
			First(&lb).Error
		if err == nil {
			snap.OnLunch = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repository) FindRecentEntries(ctx context.Context, employeeID string, limit int) ([]EntryRow, error) {
	var rows []EntryRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("clock_in DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindBreaksByEmployee(ctx context.Context, employeeID string) ([]BreakRow, error) {
	var rows []BreakRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}
