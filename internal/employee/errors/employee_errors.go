package employeeerrors

import (
	"net/http"

	"github.com/saitej-a/Leave-System/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrAccountNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"User does not exist",
		http.StatusBadRequest,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this user already exists",
		http.StatusBadRequest,
	)
	ErrNotYourEmployee = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this employee",
		http.StatusForbidden,
	)
	ErrOnlyHRCanUpdate = apperror.New(
		apperror.CodeForbidden,
		"Only HR can update employee information",
		http.StatusForbidden,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeLeaveBalance = apperror.New(
		apperror.CodeInvalidInput,
		"leave_balance cannot be negative",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidInput,
		"Insufficient leave balance",
		http.StatusBadRequest,
	)
)
