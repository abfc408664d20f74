package drivererrors

import (
	"net/http"

	"go-urenstaat/internal/shared/apperror"
)

var (
	ErrInvalidDriverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid driver id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHourlyRate = apperror.New(
		apperror.CodeInvalidInput,
		"hourly rate must be a non-negative amount",
		http.StatusBadRequest,
	)
	ErrDriverNotFound = apperror.New(
		apperror.CodeNotFound,
		"driver not found",
		http.StatusNotFound,
	)
)

// NotFound builds the not-found error naming the driver id, the shape
// report generation aborts with.
func NotFound(driverID string) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		"driver "+driverID+" not found",
		http.StatusNotFound,
	)
}
