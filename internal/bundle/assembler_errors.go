package bundle

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	ErrNoProducts = apperror.New(
		apperror.CodeUnprocessable,
		"Bundle has no products to submit",
		http.StatusUnprocessableEntity,
	).WithKind("no-products")

	ErrMissingProductID = apperror.New(
		apperror.CodeUnprocessable,
		"A bundle product is missing its identifier",
		http.StatusUnprocessableEntity,
	).WithKind("missing-id")

	ErrInvalidMethod = apperror.New(
		apperror.CodeUnprocessable,
		"Customization method must be Embroidery or Print",
		http.StatusUnprocessableEntity,
	).WithKind("invalid-method")
)
