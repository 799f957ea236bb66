package admin

import (
	"context"
	"time"

	"go-timeclock/internal/employee"

	"gorm.io/gorm"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountOpenEntries(ctx context.Context) (int64, error)
	CountOpenBreaks(ctx context.Context) (int64, error)
	CountEntriesSince(ctx context.Context, from, to time.Time) (int64, error)
	ResetAll(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Count(&count).Error
	return count, err
}

func (r *repository) CountOpenEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("time_entries").
		Where("clock_out IS NULL").
		Count(&count).Error
	return count, err
}

func (r *repository) CountOpenBreaks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("lunch_breaks").
		Where("end_time IS NULL").
		Count(&count).Error
	return count, err
}

func (r *repository) CountEntriesSince(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("time_entries").
		Where("clock_in >= ? AND clock_in < ?", from, to).
		Count(&count).Error
	return count, err
}

// ResetAll wipes all three stores and re-seeds the bootstrap admin in one
// transaction. The transaction is the global barrier required here: either
// every row is gone and the admin is back, or nothing changed.
func (r *repository) ResetAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM lunch_breaks").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM time_entries").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM employees").Error; err != nil {
			return err
		}

		admin := employee.Employee{
			ID:      employee.BootstrapAdminID,
			Name:    employee.BootstrapAdminName,
			Email:   employee.BootstrapAdminEmail,
			IsAdmin: true,
		}
		return tx.Create(&admin).Error
	})
}
