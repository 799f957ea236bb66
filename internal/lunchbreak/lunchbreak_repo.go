package lunchbreak

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lunchbreak_repo.go -destination=mock/lunchbreak_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindOpenByEmployee(ctx context.Context, employeeID string) (*LunchBreak, error)
	Create(ctx context.Context, lb *LunchBreak) error
	Update(ctx context.Context, lb *LunchBreak) error
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

func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*LunchBreak, error) {
	var lb LunchBreak
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("end_time IS NULL").
		First(&lb).Error
	return &lb, err
}

func (r *repository) Create(ctx context.Context, lb *LunchBreak) error {
	return r.db.WithContext(ctx).Create(lb).Error
}

func (r *repository) Update(ctx context.Context, lb *LunchBreak) error {
	return r.db.WithContext(ctx).Save(lb).Error
}
