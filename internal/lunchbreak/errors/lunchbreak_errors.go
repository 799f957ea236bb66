package lunchbreakerrors

import (
	"go-timeclock/internal/shared/apperror"
	"net/http"
)

var (
	ErrAlreadyOnLunch = apperror.New(
		apperror.CodeInvalidState,
		"Already on lunch break",
		http.StatusBadRequest,
	)
	ErrNotOnLunch = apperror.New(
		apperror.CodeInvalidState,
		"Not on lunch break",
		http.StatusBadRequest,
	)
)
