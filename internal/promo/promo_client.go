package promo

import (
	"context"

	"go-apparel-api/internal/backend"
)

// Validator checks promo codes against the backend promo registry.
//
//go:generate mockgen -source=promo_client.go -destination=../mock/promo/promo_client_mock.go -package=mock
type Validator interface {
	Validate(ctx context.Context, token, code string) (discountPercent float64, err error)
	Active(ctx context.Context) ([]ActivePromo, error)
}

type backendValidator struct {
	api *backend.Client
}

func NewBackendValidator(api *backend.Client) Validator {
	return &backendValidator{api: api}
}

func (v *backendValidator) Validate(ctx context.Context, token, code string) (float64, error) {
	var res validateResponse
	if err := v.api.PostJSON(ctx, "/promocodes/validate", token, validateRequest{Code: code}, &res); err != nil {
		return 0, err
	}
	if res.PromoCode == "" {
		if res.Message != "" {
			return 0, ErrInvalidCode.WithMessage(res.Message)
		}
		return 0, ErrInvalidCode
	}
	return res.Discount, nil
}

func (v *backendValidator) Active(ctx context.Context) ([]ActivePromo, error) {
	var res activeListResponse
	if err := v.api.GetJSON(ctx, "/promocodes/active", "", &res); err != nil {
		return nil, err
	}
	return res.Promos, nil
}
