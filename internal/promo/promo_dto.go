package promo

// ApplyRequest carries the code typed on the basket page.
type ApplyRequest struct {
	Code string `json:"code"`
}

// ApplyResponse reflects the promo now active on the cart.
type ApplyResponse struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discountPercent"`
	Message         string  `json:"message,omitempty"`
}

// ActivePromo is one entry from the public promo listing.
type ActivePromo struct {
	Code            string  `json:"code"`
	Description     string  `json:"description"`
	DiscountPercent float64 `json:"discountPercent"`
	ExpiresAt       string  `json:"expiresAt,omitempty"`
}

type validateRequest struct {
	Code string `json:"code"`
}

// validateResponse mirrors the backend promo endpoint: a valid code echoes
// back as promoCode with its discount percentage.
type validateResponse struct {
	PromoCode string  `json:"promoCode"`
	Discount  float64 `json:"discount"`
	Message   string  `json:"message"`
}

type activeListResponse struct {
	Promos []ActivePromo `json:"promos"`
}
