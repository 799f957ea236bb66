package timeentryerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Already clocked in",
		http.StatusBadRequest,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Not clocked in",
		http.StatusBadRequest,
	)
	ErrUnknownEmployee = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
)
