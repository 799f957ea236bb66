package timeentry

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	timeentryerrors "go-timeclock/internal/timeentry/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn             func(tx *sql.Tx) Repository
	employeeExistsFn     func(ctx context.Context, employeeID string) (bool, error)
	findOpenByEmployeeFn func(ctx context.Context, employeeID string) (*TimeEntry, error)
	createFn             func(ctx context.Context, entry *TimeEntry) error
	updateFn             func(ctx context.Context, entry *TimeEntry) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}
func (f *fakeRepo) FindOpenByEmployee(ctx context.Context, employeeID string) (*TimeEntry, error) {
	return f.findOpenByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) Create(ctx context.Context, entry *TimeEntry) error { return f.createFn(ctx, entry) }
func (f *fakeRepo) Update(ctx context.Context, entry *TimeEntry) error { return f.updateFn(ctx, entry) }

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return true, nil }
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*TimeEntry, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.createFn = func(ctx context.Context, entry *TimeEntry) error { return nil }
	repo.updateFn = func(ctx context.Context, entry *TimeEntry) error { return nil }
	return repo
}

func TestService_ClockInAndClockOut(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	var saved *TimeEntry
	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, entry *TimeEntry) error {
		entry.ID = 1
		saved = entry
		return nil
	}
	repo.updateFn = func(ctx context.Context, entry *TimeEntry) error {
		saved = entry
		return nil
	}
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*TimeEntry, error) {
		if saved == nil || saved.ClockOut != nil {
			return nil, gorm.ErrRecordNotFound
		}
		cp := *saved
		return &cp, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.ClockIn(ctx, "EMP01")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), inResp.EntryID)
	assert.Equal(t, "Successfully clocked in", inResp.Message)
	assert.NotEmpty(t, inResp.ClockIn)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.ClockOut(ctx, "EMP01")
	assert.NoError(t, err)
	assert.Equal(t, "Successfully clocked out", outResp.Message)
	assert.GreaterOrEqual(t, outResp.TotalHours, 0.0)
	assert.NotNil(t, saved.ClockOut)
	assert.NotNil(t, saved.TotalHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockOut_TotalHoursRounding(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	repo := newFakeRepo()
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*TimeEntry, error) {
		return &TimeEntry{
			ID:         7,
			EmployeeID: employeeID,
			ClockIn:    time.Now().UTC().Add(-90 * time.Minute),
		}, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ClockOut(ctx, "EMP01")
	assert.NoError(t, err)
	// 90 minutes is 1.5h; rounded to 2 decimals
	assert.InDelta(t, 1.5, resp.TotalHours, 0.01)
	assert.Equal(t, resp.TotalHours, roundHours(resp.TotalHours))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_AlreadyClockedIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	repo := newFakeRepo()
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*TimeEntry, error) {
		return &TimeEntry{ID: 3, EmployeeID: employeeID, ClockIn: time.Now().UTC()}, nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(ctx, "EMP01")
	assert.ErrorIs(t, err, timeentryerrors.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_RacingInsertLosesAtStore(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	// The open-session check passes, but the partial unique index rejects
	// the insert: the store error must map to the same conflict
	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, entry *TimeEntry) error {
		return errors.New("UNIQUE constraint failed: time_entries.employee_id")
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(ctx, "EMP01")
	assert.ErrorIs(t, err, timeentryerrors.ErrAlreadyClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockIn_UnknownEmployee(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	repo := newFakeRepo()
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return false, nil }

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockIn(ctx, "GHOST")
	assert.ErrorIs(t, err, timeentryerrors.ErrUnknownEmployee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ClockOut_NotClockedIn(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	repo := newFakeRepo()

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(ctx, "EMP01")
	assert.ErrorIs(t, err, timeentryerrors.ErrNotClockedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_HasOpenSession(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	started := time.Now().UTC().Add(-time.Hour)
	repo := newFakeRepo()
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*TimeEntry, error) {
		if employeeID == "EMP01" {
			return &TimeEntry{ID: 1, EmployeeID: employeeID, ClockIn: started}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)

	open, at, err := svc.HasOpenSession(ctx, "EMP01")
	assert.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, started, *at)

	open, at, err = svc.HasOpenSession(ctx, "EMP02")
	assert.NoError(t, err)
	assert.False(t, open)
	assert.Nil(t, at)
}
