package caorateerrors

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
	ErrInvalidValidityRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before end_date",
		http.StatusBadRequest,
	)
	ErrOverlappingPeriod = apperror.New(
		apperror.CodeConflict,
		"rate period overlaps an existing period",
		http.StatusConflict,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"rates cannot be negative",
		http.StatusBadRequest,
	)
)
