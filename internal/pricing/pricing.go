package pricing

import (
	"github.com/shopspring/decimal"

	"go-apparel-api/internal/cart"
)

// Rates the storefront charges on top of garment prices. All amounts are in
// the store currency and carried as decimals end to end; floats only appear
// at the JSON boundary.
var (
	// LogoEmbroideryFee is charged per unit for every item carrying a logo.
	LogoEmbroideryFee = decimal.RequireFromString("5.50")
	// NewLogoSetupFee is charged per unit when the logo is new, not reused
	// from an earlier order.
	NewLogoSetupFee = decimal.RequireFromString("20.00")
	// FreeShippingThreshold waives shipping once the order total reaches it.
	FreeShippingThreshold = decimal.RequireFromString("100")
	// StandardShipping applies below the threshold.
	StandardShipping = decimal.RequireFromString("4.95")
)

// Snapshot is the fully derived price breakdown for one cart state. It is
// recomputed from scratch on every cart change; no field is ever carried
// over between computations.
type Snapshot struct {
	Subtotal            decimal.Decimal `json:"subtotal"`
	LogoEmbroideryTotal decimal.Decimal `json:"logoEmbroideryTotal"`
	NewLogoSetupTotal   decimal.Decimal `json:"newLogoSetupTotal"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	DiscountAmount      decimal.Decimal `json:"discountAmount"`
	ShippingCost        decimal.Decimal `json:"shippingCost"`
	FinalAmount         decimal.Decimal `json:"finalAmount"`
}

// Input captures everything the computation depends on.
type Input struct {
	Cart cart.Snapshot
	// Authed gates the promo discount: an unauthenticated shopper never
	// receives one even if a promo is somehow present.
	Authed bool
}

// Compute derives the price breakdown. The discount percentage applies to
// the total amount (goods plus logo charges), never to shipping.
func Compute(in Input) Snapshot {
	var snap Snapshot
	snap.Subtotal = decimal.Zero
	snap.LogoEmbroideryTotal = decimal.Zero
	snap.NewLogoSetupTotal = decimal.Zero

	for _, item := range in.Cart.Items {
		qty := decimal.NewFromInt32(item.Quantity)
		price := decimal.NewFromFloat(item.Price)

		snap.Subtotal = snap.Subtotal.Add(price.Mul(qty))

		if item.HasLogo() {
			snap.LogoEmbroideryTotal = snap.LogoEmbroideryTotal.Add(LogoEmbroideryFee.Mul(qty))
			if !item.UsePreviousLogo {
				snap.NewLogoSetupTotal = snap.NewLogoSetupTotal.Add(NewLogoSetupFee.Mul(qty))
			}
		}
	}

	snap.TotalAmount = snap.Subtotal.
		Add(snap.LogoEmbroideryTotal).
		Add(snap.NewLogoSetupTotal)

	snap.DiscountAmount = decimal.Zero
	if in.Authed && in.Cart.Promo != nil && len(in.Cart.Items) > 0 {
		pct := decimal.NewFromFloat(in.Cart.Promo.DiscountPercent)
		snap.DiscountAmount = snap.TotalAmount.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
	}

	snap.ShippingCost = shipping(snap.TotalAmount, in.Cart.ShippingOverride)

	snap.FinalAmount = snap.TotalAmount.
		Sub(snap.DiscountAmount).
		Add(snap.ShippingCost)

	return snap
}

func shipping(totalAmount decimal.Decimal, override *float64) decimal.Decimal {
	if override != nil {
		return decimal.NewFromFloat(*override)
	}
	if totalAmount.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return StandardShipping
}
