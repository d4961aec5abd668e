package wizard

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	// ErrMissingBundle is fatal: no retry path, only close.
	ErrMissingBundle = apperror.New(
		apperror.CodeUnprocessable,
		"Bundle identifier is missing; close the wizard and try again",
		http.StatusUnprocessableEntity,
	).WithKind("missing-bundle")

	ErrIllegalTransition = apperror.New(
		apperror.CodeConflict,
		"This step is not available right now",
		http.StatusConflict,
	)

	ErrNoPositions = apperror.New(
		apperror.CodeInvalidInput,
		"Select at least one position before continuing",
		http.StatusBadRequest,
	)

	ErrUnknownPosition = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown garment position",
		http.StatusBadRequest,
	)

	ErrUnknownLogoChoice = apperror.New(
		apperror.CodeInvalidInput,
		"Logo method must be text or image",
		http.StatusBadRequest,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"No customization in progress for this bundle",
		http.StatusNotFound,
	)
)
