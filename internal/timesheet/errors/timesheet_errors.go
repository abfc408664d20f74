package timesheeterrors

import (
	"net/http"

	"go-urenstaat/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit number",
		http.StatusBadRequest,
	)
	ErrInvalidWeek = apperror.New(
		apperror.CodeInvalidInput,
		"week must be between 1 and 53",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period must be between 1 and 13",
		http.StatusBadRequest,
	)
	ErrWeekOrPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"either week or period must be given, not both",
		http.StatusBadRequest,
	)
)
