package autherrors

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	ErrAuthRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Please login to continue",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Authentication token expired",
		http.StatusUnauthorized,
	)

	// ErrSessionExpired carries a kind so errors.Is can tell it apart from
	// the other unauthorized errors; surfacing it clears the stored token.
	ErrSessionExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Your session has expired, please login again",
		http.StatusUnauthorized,
	).WithKind("session-expired")

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)
)
