package shifterrors

import (
	"net/http"

	"shift-tracker/internal/shared/apperror"
)

var (
	ErrShiftAlreadyOpen = apperror.New(
		apperror.CodeConflict,
		"You already have an open shift. Please clock out first.",
		http.StatusConflict,
	)

	ErrShiftAlreadyClosed = apperror.New(
		apperror.CodeConflict,
		"Shift is already clocked out",
		http.StatusConflict,
	)

	// ErrConcurrentUpdate is a lost serialization race that left the
	// caller's own shift untouched.
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"Another update was in progress, please retry",
		http.StatusConflict,
	)

	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)

	ErrShiftForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only clock out of your own shift",
		http.StatusForbidden,
	)

	ErrOrganizationMissing = apperror.New(
		apperror.CodeInvalidState,
		"Your account is not linked to an organization",
		http.StatusConflict,
	)

	ErrInvalidShiftID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid shift ID",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	// ErrUserShiftsForbidden covers both unknown workers and workers of
	// another organization.
	ErrUserShiftsForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only view shifts of workers in your organization",
		http.StatusForbidden,
	)

	ErrManagerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only managers can view other workers' shifts",
		http.StatusForbidden,
	)
)
