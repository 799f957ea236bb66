package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	EnsureBootstrapAdmin(ctx context.Context) error
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

// EnsureBootstrapAdmin seeds the well-known admin record if absent
// (insert-or-ignore, safe to run on every startup).
func (r *repository) EnsureBootstrapAdmin(ctx context.Context) error {
	admin := Employee{
		ID:      BootstrapAdminID,
		Name:    BootstrapAdminName,
		Email:   BootstrapAdminEmail,
		IsAdmin: true,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&admin).Error
}
