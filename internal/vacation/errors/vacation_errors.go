package vacationerrors

import (
	"net/http"

	"go-urenstaat/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit number",
		http.StatusBadRequest,
	)
	ErrZeroHours = apperror.New(
		apperror.CodeInvalidInput,
		"mutation hours must be non-zero",
		http.StatusBadRequest,
	)
)
