package promo

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	ErrEmptyCode = apperror.New(
		apperror.CodeInvalidInput,
		"Please enter a promo code",
		http.StatusBadRequest,
	).WithKind("empty-code")

	ErrInvalidCode = apperror.New(
		apperror.CodeUnprocessable,
		"Invalid promo code",
		http.StatusUnprocessableEntity,
	).WithKind("invalid-code")

	ErrAuthRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Please log in to apply a promo code",
		http.StatusUnauthorized,
	)

	ErrCartEmptyPromo = apperror.New(
		apperror.CodeUnprocessable,
		"Add items to your basket before applying a promo code",
		http.StatusUnprocessableEntity,
	)
)
