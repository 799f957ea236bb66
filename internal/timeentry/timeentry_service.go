package timeentry

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	timeentryerrors "go-timeclock/internal/timeentry/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeentry_service.go -destination=mock/timeentry_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string) (ClockInResponse, error)
	ClockOut(ctx context.Context, employeeID string) (ClockOutResponse, error)
	HasOpenSession(ctx context.Context, employeeID string) (bool, *time.Time, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (ClockInResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClockInResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, employeeID)
	if err != nil {
		return ClockInResponse{}, err
	}
	if !exists {
		return ClockInResponse{}, timeentryerrors.ErrUnknownEmployee
	}

	_, err = qtx.FindOpenByEmployee(ctx, employeeID)
	if err == nil {
		return ClockInResponse{}, timeentryerrors.ErrAlreadyClockedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ClockInResponse{}, err
	}

	now := time.Now().UTC()
	row := &TimeEntry{
		EmployeeID: employeeID,
		ClockIn:    now,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return ClockInResponse{}, mapWriteError(err)
	}
	if err := tx.Commit(); err != nil {
		return ClockInResponse{}, err
	}

	return ClockInResponse{
		Message: "Successfully clocked in",
		EntryID: row.ID,
		ClockIn: now.Format(time.RFC3339),
	}, nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (ClockOutResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClockOutResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ClockOutResponse{}, timeentryerrors.ErrNotClockedIn
		}
		return ClockOutResponse{}, err
	}

	now := time.Now().UTC()
	// now >= clock_in, so total hours is non-negative by construction
	totalHours := roundHours(now.Sub(row.ClockIn).Hours())

	row.ClockOut = &now
	row.TotalHours = &totalHours

	if err := qtx.Update(ctx, row); err != nil {
		return ClockOutResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ClockOutResponse{}, err
	}

	return ClockOutResponse{
		Message:    "Successfully clocked out",
		TotalHours: totalHours,
		ClockOut:   now.Format(time.RFC3339),
	}, nil
}

func (s *service) HasOpenSession(ctx context.Context, employeeID string) (bool, *time.Time, error) {
	row, err := s.repo.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, &row.ClockIn, nil
}

// roundHours rounds to 2 decimal places
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
