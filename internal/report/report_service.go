package report

import (
	"context"
	"errors"
	"time"

	employeeerrors "go-timeclock/internal/employee/errors"

	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 90
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	CurrentStatus(ctx context.Context, employeeID string) (StatusResponse, error)
	History(ctx context.Context, employeeID string, limit int) ([]HistoryRow, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CurrentStatus(ctx context.Context, employeeID string) (StatusResponse, error) {
	snap, err := s.repo.GetStatusSnapshot(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return StatusResponse{}, err
	}

	status := StatusInfo{
		ClockedIn: snap.ClockInTime != nil,
		OnLunch:   snap.OnLunch,
	}
	if snap.ClockInTime != nil {
		v := snap.ClockInTime.UTC().Format(time.RFC3339)
		status.ClockInTime = &v
	}

	// Break state wins in reporting even though it is logically a
	// sub-state of being clocked in
	switch {
	case status.OnLunch:
		status.State = StateOnLunch
	case status.ClockedIn:
		status.State = StateClockedIn
	default:
		status.State = StateClockedOut
	}

	return StatusResponse{
		Employee: EmployeeInfo{
			ID:      snap.Employee.ID,
			Name:    snap.Employee.Name,
			Email:   snap.Employee.Email,
			IsAdmin: snap.Employee.IsAdmin,
		},
		Status: status,
	}, nil
}

// History returns recent work sessions, newest first, each joined with the
// earliest lunch break started on the same UTC calendar date. The same-day
// heuristic is deliberate: breaks are not keyed to sessions, so a break
// spanning midnight or a second break on the same day is not represented.
func (s *service) History(ctx context.Context, employeeID string, limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.repo.FindRecentEntries(ctx, employeeID, limit)
	if err != nil {
		return nil, err
	}

	breaks, err := s.repo.FindBreaksByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	// Earliest break per calendar date; FindBreaksByEmployee orders ascending
	breakByDate := make(map[string]BreakRow, len(breaks))
	for _, b := range breaks {
		d := b.StartTime.UTC().Format("2006-01-02")
		if _, ok := breakByDate[d]; !ok {
			breakByDate[d] = b
		}
	}

	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		row := HistoryRow{
			ID:         e.ID,
			ClockIn:    e.ClockIn.UTC().Format(time.RFC3339),
			TotalHours: e.TotalHours,
		}
		if e.ClockOut != nil {
			v := e.ClockOut.UTC().Format(time.RFC3339)
			row.ClockOut = &v
		}

		if b, ok := breakByDate[e.ClockIn.UTC().Format("2006-01-02")]; ok {
			start := b.StartTime.UTC().Format(time.RFC3339)
			row.LunchStart = &start
			if b.EndTime != nil {
				end := b.EndTime.UTC().Format(time.RFC3339)
				row.LunchEnd = &end
			}
			row.DurationMinutes = b.DurationMinutes
		}

		rows = append(rows, row)
	}

	return rows, nil
}
