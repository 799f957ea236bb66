package lunchbreak

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	lunchbreakerrors "go-timeclock/internal/lunchbreak/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lunchbreak_service.go -destination=mock/lunchbreak_service_mock.go -package=mock
type Service interface {
	StartLunch(ctx context.Context, employeeID string) (StartLunchResponse, error)
	EndLunch(ctx context.Context, employeeID string) (EndLunchResponse, error)
	HasOpenBreak(ctx context.Context, employeeID string) (bool, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// StartLunch does not check work-session state: an employee can start a
// lunch break without being clocked in. That matches the shipped behavior
// of the system this replaces.
func (s *service) StartLunch(ctx context.Context, employeeID string) (StartLunchResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StartLunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindOpenByEmployee(ctx, employeeID)
	if err == nil {
		return StartLunchResponse{}, lunchbreakerrors.ErrAlreadyOnLunch
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return StartLunchResponse{}, err
	}

	now := time.Now().UTC()
	row := &LunchBreak{
		EmployeeID: employeeID,
		StartTime:  now,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return StartLunchResponse{}, mapWriteError(err)
	}
	if err := tx.Commit(); err != nil {
		return StartLunchResponse{}, err
	}

	return StartLunchResponse{
		Message:   "Lunch break started",
		LunchID:   row.ID,
		StartTime: now.Format(time.RFC3339),
	}, nil
}

func (s *service) EndLunch(ctx context.Context, employeeID string) (EndLunchResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EndLunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EndLunchResponse{}, lunchbreakerrors.ErrNotOnLunch
		}
		return EndLunchResponse{}, err
	}

	now := time.Now().UTC()
	duration := roundMinutes(now.Sub(row.StartTime).Minutes())

	row.EndTime = &now
	row.DurationMinutes = &duration

	if err := qtx.Update(ctx, row); err != nil {
		return EndLunchResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EndLunchResponse{}, err
	}

	return EndLunchResponse{
		Message:         "Lunch break ended",
		DurationMinutes: duration,
		EndTime:         now.Format(time.RFC3339),
	}, nil
}

func (s *service) HasOpenBreak(ctx context.Context, employeeID string) (bool, error) {
	_, err := s.repo.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// roundMinutes rounds to the nearest whole minute
func roundMinutes(m float64) int {
	return int(math.Round(m))
}
