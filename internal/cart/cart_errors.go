package cart

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeUnprocessable,
		"Cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart item not found",
		http.StatusNotFound,
	)

	ErrInvalidQty = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidShipping = apperror.New(
		apperror.CodeInvalidInput,
		"Shipping cost cannot be negative",
		http.StatusBadRequest,
	)

	ErrSubmissionInFlight = apperror.New(
		apperror.CodeConflict,
		"A submission is already in progress for this bundle",
		http.StatusConflict,
	)

	ErrSubmitFailed = apperror.New(
		apperror.CodeBadGateway,
		"Could not add the bundle to your cart, please try again",
		http.StatusBadGateway,
	)
)
