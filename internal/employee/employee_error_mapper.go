package employee

import (
	"errors"
	"strings"

	employeeerrors "go-timeclock/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return employeeerrors.ErrEmployeeIDExists
		}
	}

	// sqlite reports the same condition as a plain message
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") ||
		strings.Contains(errMsg, "duplicate key value") {
		return employeeerrors.ErrEmployeeIDExists
	}

	return err
}
