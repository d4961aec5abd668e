package promo

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"go-apparel-api/internal/cart"
)

//go:generate mockgen -source=promo_service.go -destination=../mock/promo/promo_service_mock.go -package=mock
type Service interface {
	// Apply validates code for the logged-in user and attaches the discount
	// to the whole cart.
	Apply(ctx context.Context, userID, token, code string) (ApplyResponse, error)
	// Remove drops the active promo from the cart.
	Remove(ctx context.Context, userID string) error
	// Active lists currently running promotions; no auth needed.
	Active(ctx context.Context) ([]ActivePromo, error)
}

type service struct {
	stores    *cart.Manager
	validator Validator
	logger    *zap.Logger
}

type Deps struct {
	Stores    *cart.Manager
	Validator Validator
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Stores == nil {
		panic("cart store manager cannot be nil")
	}
	if deps.Validator == nil {
		panic("promo validator cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		stores:    deps.Stores,
		validator: deps.Validator,
		logger:    deps.Logger.Named("promo.service"),
	}
}

func (s *service) Apply(ctx context.Context, userID, token, code string) (ApplyResponse, error) {
	if userID == "" || token == "" {
		return ApplyResponse{}, ErrAuthRequired
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ApplyResponse{}, ErrEmptyCode
	}

	store := s.stores.ForUser(ctx, userID)
	if len(store.Snapshot().Items) == 0 {
		return ApplyResponse{}, ErrCartEmptyPromo
	}

	discount, err := s.validator.Validate(ctx, token, code)
	if err != nil {
		return ApplyResponse{}, err
	}

	store.SetPromo(cart.Promo{Code: code, DiscountPercent: discount})
	s.logger.Info("promo applied",
		zap.String("user_id", userID),
		zap.String("code", code),
		zap.Float64("discount_percent", discount),
	)

	return ApplyResponse{
		Code:            code,
		DiscountPercent: discount,
		Message:         "Promo code applied",
	}, nil
}

func (s *service) Remove(ctx context.Context, userID string) error {
	s.stores.ForUser(ctx, userID).ClearPromo()
	return nil
}

func (s *service) Active(ctx context.Context) ([]ActivePromo, error) {
	return s.validator.Active(ctx)
}
