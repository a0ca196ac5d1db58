package autherrors

import (
	"net/http"

	"github.com/saitej-a/Leave-System/internal/shared/apperror"
)

var (
	ErrMissingCredentials = apperror.New(
		apperror.CodeInvalidInput,
		"Email and Password are required",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"User with this email already exists",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User doesn't Exist",
		http.StatusNotFound,
	)
	ErrPasswordInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"Password Invalid",
		http.StatusBadRequest,
	)
	ErrRegisterWhileAuthenticated = apperror.New(
		apperror.CodeAlreadyAuthenticated,
		"Try Register after logout",
		http.StatusFound,
	)
	ErrLoginWhileAuthenticated = apperror.New(
		apperror.CodeAlreadyAuthenticated,
		"Try Login after logout",
		http.StatusFound,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenRevoked = apperror.New(
		apperror.CodeUnauthorized,
		"Token has been revoked",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeForbidden,
		"Account is inactive",
		http.StatusForbidden,
	)
)
