package checkout

import (
	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/pricing"
)

type ShippingAddress struct {
	Line1    string `json:"line1" validate:"required"`
	Line2    string `json:"line2"`
	City     string `json:"city" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

type CustomerDetails struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
}

type CheckoutRequest struct {
	Address  ShippingAddress `json:"address" validate:"required"`
	Customer CustomerDetails `json:"customer" validate:"required"`
}

// QuoteResponse is the live price breakdown for the basket page.
type QuoteResponse struct {
	Items   []cart.ItemResponse `json:"items"`
	Promo   *cart.Promo         `json:"promo,omitempty"`
	Pricing pricing.Breakdown   `json:"pricing"`
}

// CheckoutResponse points the shopper at the hosted payment page.
type CheckoutResponse struct {
	OrderID     string            `json:"orderId"`
	SessionID   string            `json:"sessionId"`
	Token       string            `json:"snapToken"`
	RedirectURL string            `json:"redirectUrl"`
	Pricing     pricing.Breakdown `json:"pricing"`
}
