package logo

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	ErrEmptyText = apperror.New(
		apperror.CodeInvalidInput,
		"Logo text cannot be empty",
		http.StatusBadRequest,
	).WithKind("empty text")

	ErrInvalidFont = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown logo font",
		http.StatusBadRequest,
	).WithKind("invalid-font")

	ErrUnsupportedType = apperror.New(
		apperror.CodeInvalidInput,
		"Logo must be a JPEG or PNG image",
		http.StatusBadRequest,
	).WithKind("unsupported-type")

	ErrTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Logo file exceeds the 5 MB limit",
		http.StatusBadRequest,
	).WithKind("too-large")

	ErrEmptyURL = apperror.New(
		apperror.CodeInvalidInput,
		"Previous logo URL is required",
		http.StatusBadRequest,
	).WithKind("empty-url")
)
