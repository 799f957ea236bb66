package employee

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	employeeerrors "go-timeclock/internal/employee/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	Lookup(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Register(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error) {
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	if id == "" || name == "" {
		return CreateEmployeeResponse{}, employeeerrors.ErrMissingRequiredFields
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByID(ctx, id)
	if err == nil {
		return CreateEmployeeResponse{}, employeeerrors.ErrEmployeeIDExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return CreateEmployeeResponse{}, err
	}

	// New registrations never carry the admin flag
	row := &Employee{
		ID:    id,
		Name:  name,
		Email: req.Email,
	}

	// The primary-key constraint is the real duplicate guard; a racing
	// insert loses here and maps to the same conflict error.
	if err := qtx.Create(ctx, row); err != nil {
		return CreateEmployeeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return CreateEmployeeResponse{}, err
	}

	return CreateEmployeeResponse{
		Message:    "Employee created successfully",
		EmployeeID: row.ID,
	}, nil
}

func (s *service) Lookup(ctx context.Context, id string) (EmployeeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return EmployeeResponse{
		ID:      row.ID,
		Name:    row.Name,
		Email:   row.Email,
		IsAdmin: row.IsAdmin,
	}, nil
}
