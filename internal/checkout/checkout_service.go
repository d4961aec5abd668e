package checkout

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/messaging/kafka/producer"
	"go-apparel-api/internal/payments"
	"go-apparel-api/internal/pricing"
)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	// Quote recomputes the full price breakdown for the current cart.
	Quote(ctx context.Context, userID string, authed bool) (QuoteResponse, error)
	// Checkout snapshots the cart, creates a hosted payment session and
	// emits the completion event. Nothing is mutated when session creation
	// fails.
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (CheckoutResponse, error)
}

type service struct {
	stores     *cart.Manager
	cartSvc    cart.Service
	paymentSvc payments.Service
	publisher  producer.Publisher
	validate   *validator.Validate
	logger     *zap.Logger
}

type Deps struct {
	Stores     *cart.Manager
	CartSvc    cart.Service
	PaymentSvc payments.Service
	Publisher  producer.Publisher
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Stores == nil {
		panic("cart store manager cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.PaymentSvc == nil {
		panic("payment service cannot be nil")
	}
	if deps.Publisher == nil {
		panic("event publisher cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		stores:     deps.Stores,
		cartSvc:    deps.CartSvc,
		paymentSvc: deps.PaymentSvc,
		publisher:  deps.Publisher,
		validate:   validator.New(),
		logger:     deps.Logger.Named("checkout.service"),
	}
}

func (s *service) Quote(ctx context.Context, userID string, authed bool) (QuoteResponse, error) {
	detail, err := s.cartSvc.Detail(ctx, userID)
	if err != nil {
		return QuoteResponse{}, err
	}

	snap := pricing.Compute(pricing.Input{
		Cart:   s.stores.ForUser(ctx, userID).Snapshot(),
		Authed: authed,
	})

	return QuoteResponse{
		Items:   detail.Items,
		Promo:   detail.Promo,
		Pricing: snap.Breakdown(),
	}, nil
}

func (s *service) Checkout(ctx context.Context, userID string, req CheckoutRequest) (CheckoutResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, ErrInvalidAddress
	}

	store := s.stores.ForUser(ctx, userID)
	cartSnap := store.Snapshot()
	if len(cartSnap.Items) == 0 {
		return CheckoutResponse{}, cart.ErrCartEmpty
	}

	// The shopper reached checkout through auth middleware, so the discount
	// gate is satisfied.
	priceSnap := pricing.Compute(pricing.Input{Cart: cartSnap, Authed: true})

	orderID := uuid.New().String()
	logger := s.logger.With(
		zap.String("user_id", userID),
		zap.String("order_id", orderID),
	)

	session, err := s.paymentSvc.CreateCheckoutSession(&payments.CreateSessionRequest{
		OrderID:     orderID,
		GrossAmount: toMinorUnits(priceSnap.FinalAmount),
		Customer: &payments.CustomerDetails{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Email:     req.Customer.Email,
			Phone:     req.Customer.Phone,
		},
		Shipping: &payments.Address{
			Line1:    req.Address.Line1,
			Line2:    req.Address.Line2,
			City:     req.Address.City,
			Postcode: req.Address.Postcode,
			Country:  req.Address.Country,
		},
		Items: sessionItems(cartSnap, priceSnap),
	})
	if err != nil {
		logger.Error("payment session creation failed", zap.Error(err))
		return CheckoutResponse{}, ErrPaymentSession
	}

	// The discount was consumed by this session.
	store.ClearPromo()

	payload, err := json.Marshal(CheckoutCompletedPayload{UserID: userID, OrderID: orderID})
	if err == nil {
		err = s.publisher.Publish(ctx, producer.Event{
			Key:           userID,
			Type:          EventCheckoutCompleted,
			AggregateType: AggregateCheckout,
			Payload:       payload,
		})
	}
	if err != nil {
		// The session exists either way; the consumer just will not clear
		// the cart until the shopper does it themselves.
		logger.Warn("checkout event publish failed", zap.Error(err))
	} else {
		logger.Info("checkout session created",
			zap.String("session_id", session.SessionID),
			zap.String("final_amount", priceSnap.FinalAmount.StringFixed(2)),
		)
	}

	return CheckoutResponse{
		OrderID:     orderID,
		SessionID:   session.SessionID,
		Token:       session.Token,
		RedirectURL: session.RedirectURL,
		Pricing:     priceSnap.Breakdown(),
	}, nil
}

// toMinorUnits renders a decimal amount in the gateway's smallest currency
// unit.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func sessionItems(cartSnap cart.Snapshot, priceSnap pricing.Snapshot) []payments.ItemDetail {
	items := make([]payments.ItemDetail, 0, len(cartSnap.Items)+3)
	for _, item := range cartSnap.Items {
		items = append(items, payments.ItemDetail{
			ID:    item.ID,
			Price: toMinorUnits(decimal.NewFromFloat(item.Price)),
			Qty:   item.Quantity,
			Name:  item.Title,
		})
	}
	if !priceSnap.LogoEmbroideryTotal.IsZero() {
		items = append(items, payments.ItemDetail{
			ID: "logo-embroidery", Price: toMinorUnits(priceSnap.LogoEmbroideryTotal), Qty: 1, Name: "Logo embroidery",
		})
	}
	if !priceSnap.NewLogoSetupTotal.IsZero() {
		items = append(items, payments.ItemDetail{
			ID: "logo-setup", Price: toMinorUnits(priceSnap.NewLogoSetupTotal), Qty: 1, Name: "New logo setup",
		})
	}
	if !priceSnap.ShippingCost.IsZero() {
		items = append(items, payments.ItemDetail{
			ID: "shipping", Price: toMinorUnits(priceSnap.ShippingCost), Qty: 1, Name: "Shipping",
		})
	}
	if !priceSnap.DiscountAmount.IsZero() {
		items = append(items, payments.ItemDetail{
			ID: "promo-discount", Price: -toMinorUnits(priceSnap.DiscountAmount), Qty: 1, Name: "Promo discount",
		})
	}
	return items
}
