package autherrors

import (
	"net/http"

	"shift-tracker/internal/shared/apperror"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized: You must be logged in.",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Session expired, please sign in again",
		http.StatusUnauthorized,
	)

	ErrInvalidIdentityToken = apperror.New(
		apperror.CodeUnauthorized,
		"Identity token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue access token",
		http.StatusInternalServerError,
	)
)
