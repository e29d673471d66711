package organizationerrors

import (
	"net/http"

	"shift-tracker/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)

	ErrOrganizationForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only manage your own organization",
		http.StatusForbidden,
	)

	ErrManagerOnly = apperror.New(
		apperror.CodeForbidden,
		"Only managers can perform this action",
		http.StatusForbidden,
	)

	ErrInvalidOrganizationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid organization ID",
		http.StatusBadRequest,
	)
)
