package timeentry

import (
	"errors"
	"strings"

	timeentryerrors "go-timeclock/internal/timeentry/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapWriteError translates a store-level violation of the one-open-session
// index into the business conflict error. Everything else passes through.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return timeentryerrors.ErrAlreadyClockedIn
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "duplicate key value") {
		return timeentryerrors.ErrAlreadyClockedIn
	}

	return err
}
