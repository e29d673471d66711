package usererrors

import (
	"net/http"

	"shift-tracker/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	// ErrUnknownCaller is returned when a token resolves to no stored worker.
	ErrUnknownCaller = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized: You must be logged in.",
		http.StatusUnauthorized,
	)

	ErrManagerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only managers can view organization users",
		http.StatusForbidden,
	)
)
