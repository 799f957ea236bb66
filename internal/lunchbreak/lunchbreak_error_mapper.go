package lunchbreak

import (
	"errors"
	"strings"

	lunchbreakerrors "go-timeclock/internal/lunchbreak/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapWriteError translates a store-level violation of the one-open-break
// index into the business conflict error.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return lunchbreakerrors.ErrAlreadyOnLunch
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "duplicate key value") {
		return lunchbreakerrors.ErrAlreadyOnLunch
	}

	return err
}
