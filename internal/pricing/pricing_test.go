package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/logo"
)

func plainItem(price float64, qty int32) cart.LineItem {
	return cart.LineItem{ID: "plain", Price: price, Quantity: qty}
}

func newLogoItem(price float64, qty int32) cart.LineItem {
	return cart.LineItem{
		ID:       "new-logo",
		Price:    price,
		Quantity: qty,
		Logo:     logo.Wrap(logo.TextLogo{Line: "ACME", Font: logo.FontStandard}),
	}
}

func reusedLogoItem(price float64, qty int32) cart.LineItem {
	return cart.LineItem{
		ID:              "reused-logo",
		Price:           price,
		Quantity:        qty,
		Logo:            logo.Wrap(logo.ReusedLogo{URL: "https://cdn.example/logo.png"}),
		UsePreviousLogo: true,
	}
}

func TestCompute(t *testing.T) {
	t.Run("plain_order_over_threshold_ships_free", func(t *testing.T) {
		snap := Compute(Input{Cart: cart.Snapshot{
			Items: []cart.LineItem{plainItem(120, 1)},
		}})

		assert.Equal(t, "120.00", snap.Subtotal.StringFixed(2))
		assert.Equal(t, "0.00", snap.ShippingCost.StringFixed(2))
		assert.Equal(t, "120.00", snap.FinalAmount.StringFixed(2))
	})

	t.Run("new_logo_order_accrues_both_fees_and_shipping", func(t *testing.T) {
		snap := Compute(Input{Cart: cart.Snapshot{
			Items: []cart.LineItem{newLogoItem(40, 1)},
		}})

		assert.Equal(t, "40.00", snap.Subtotal.StringFixed(2))
		assert.Equal(t, "5.50", snap.LogoEmbroideryTotal.StringFixed(2))
		assert.Equal(t, "20.00", snap.NewLogoSetupTotal.StringFixed(2))
		assert.Equal(t, "65.50", snap.TotalAmount.StringFixed(2))
		assert.Equal(t, "4.95", snap.ShippingCost.StringFixed(2))
		assert.Equal(t, "70.45", snap.FinalAmount.StringFixed(2))
	})

	t.Run("reused_logo_skips_setup_fee", func(t *testing.T) {
		snap := Compute(Input{Cart: cart.Snapshot{
			Items: []cart.LineItem{reusedLogoItem(40, 2)},
		}})

		assert.Equal(t, "11.00", snap.LogoEmbroideryTotal.StringFixed(2))
		assert.Equal(t, "0.00", snap.NewLogoSetupTotal.StringFixed(2))
	})

	t.Run("promo_discounts_total_amount_for_authed_user", func(t *testing.T) {
		snap := Compute(Input{
			Cart: cart.Snapshot{
				Items: []cart.LineItem{plainItem(100, 1)},
				Promo: &cart.Promo{Code: "SAVE10", DiscountPercent: 10},
			},
			Authed: true,
		})

		assert.Equal(t, "10.00", snap.DiscountAmount.StringFixed(2))
		assert.Equal(t, "0.00", snap.ShippingCost.StringFixed(2))
		assert.Equal(t, "90.00", snap.FinalAmount.StringFixed(2))
	})

	t.Run("promo_ignored_without_auth", func(t *testing.T) {
		snap := Compute(Input{
			Cart: cart.Snapshot{
				Items: []cart.LineItem{plainItem(100, 1)},
				Promo: &cart.Promo{Code: "SAVE10", DiscountPercent: 10},
			},
		})

		assert.True(t, snap.DiscountAmount.IsZero())
		assert.Equal(t, "100.00", snap.FinalAmount.StringFixed(2))
	})

	t.Run("discount_never_touches_shipping", func(t *testing.T) {
		snap := Compute(Input{
			Cart: cart.Snapshot{
				Items: []cart.LineItem{plainItem(50, 1)},
				Promo: &cart.Promo{Code: "SAVE50", DiscountPercent: 50},
			},
			Authed: true,
		})

		// 50 − 25 + 4.95
		assert.Equal(t, "4.95", snap.ShippingCost.StringFixed(2))
		assert.Equal(t, "29.95", snap.FinalAmount.StringFixed(2))
	})

	t.Run("shipping_override_pins_the_cost", func(t *testing.T) {
		override := 9.99
		snap := Compute(Input{Cart: cart.Snapshot{
			Items:            []cart.LineItem{plainItem(200, 1)},
			ShippingOverride: &override,
		}})

		assert.Equal(t, "9.99", snap.ShippingCost.StringFixed(2))
	})

	t.Run("empty_cart_is_all_zero", func(t *testing.T) {
		snap := Compute(Input{Cart: cart.Snapshot{}, Authed: true})

		assert.True(t, snap.Subtotal.IsZero())
		assert.True(t, snap.DiscountAmount.IsZero())
		// An empty cart still reports the standard rate below threshold.
		assert.Equal(t, "4.95", snap.ShippingCost.StringFixed(2))
	})
}

// The breakdown must always reconcile with itself regardless of composition.
func TestComputeIdentity(t *testing.T) {
	carts := []cart.Snapshot{
		{Items: []cart.LineItem{plainItem(19.99, 3), newLogoItem(55, 2)}},
		{
			Items: []cart.LineItem{reusedLogoItem(12.5, 4), plainItem(80, 1)},
			Promo: &cart.Promo{Code: "SAVE15", DiscountPercent: 15},
		},
		{Items: []cart.LineItem{newLogoItem(0.01, 1)}},
	}

	for _, c := range carts {
		snap := Compute(Input{Cart: c, Authed: true})

		total := snap.Subtotal.Add(snap.LogoEmbroideryTotal).Add(snap.NewLogoSetupTotal)
		assert.True(t, snap.TotalAmount.Equal(total))

		final := snap.TotalAmount.Sub(snap.DiscountAmount).Add(snap.ShippingCost)
		assert.True(t, snap.FinalAmount.Equal(final))
	}
}

func TestBreakdownRendersFixedDecimals(t *testing.T) {
	snap := Compute(Input{Cart: cart.Snapshot{
		Items: []cart.LineItem{plainItem(33.333, 3)},
	}})

	b := snap.Breakdown()
	assert.Equal(t, "99.999", snap.Subtotal.String())
	assert.Equal(t, "100.00", b.Subtotal)

	_, err := decimal.NewFromString(b.FinalAmount)
	assert.NoError(t, err)
}
