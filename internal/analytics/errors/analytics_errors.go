package analyticserrors

import (
	"net/http"

	"shift-tracker/internal/shared/apperror"
)

var (
	ErrManagerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only managers can view organization analytics",
		http.StatusForbidden,
	)

	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to build the dashboard export",
		http.StatusInternalServerError,
	)
)
