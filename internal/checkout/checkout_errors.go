package checkout

import (
	"net/http"

	"go-apparel-api/internal/pkg/apperror"
)

var (
	ErrInvalidAddress = apperror.New(
		apperror.CodeInvalidInput,
		"Please complete your shipping details",
		http.StatusBadRequest,
	)

	ErrPaymentSession = apperror.New(
		apperror.CodeBadGateway,
		"Could not start the payment session, please try again",
		http.StatusBadGateway,
	)
)
