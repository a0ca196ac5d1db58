package leaveerrors

import (
	"net/http"

	"github.com/saitej-a/Leave-System/internal/shared/apperror"
)

var (
	ErrNotAnEmployee = apperror.New(
		apperror.CodeForbidden,
		"You are not registered as an employee",
		http.StatusForbidden,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidInput,
		"Insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrStartBeforeJoining = apperror.New(
		apperror.CodeInvalidInput,
		"Leave start date cannot be before date of joining",
		http.StatusBadRequest,
	)
	ErrUpdateNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Cannot update a leave request that is not pending",
		http.StatusBadRequest,
	)
	ErrDeleteNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Cannot delete a leave request that is not pending",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status",
		http.StatusBadRequest,
	)
	ErrEmployeeCannotSetStatus = apperror.New(
		apperror.CodeForbidden,
		"Employees cannot change status",
		http.StatusForbidden,
	)
	ErrNotYourLeaveRequest = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this leave request",
		http.StatusForbidden,
	)
	ErrDeleteForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to delete this leave request",
		http.StatusForbidden,
	)
)
