package timeentry

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_repo.go -destination=mock/timeentry_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	FindOpenByEmployee(ctx context.Context, employeeID string) (*TimeEntry, error)
	Create(ctx context.Context, entry *TimeEntry) error
	Update(ctx context.Context, entry *TimeEntry) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*TimeEntry, error) {
	var entry TimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("clock_out IS NULL").
		First(&entry).Error
	return &entry, err
}

func (r *repository) Create(ctx context.Context, entry *TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) Update(ctx context.Context, entry *TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}
