package cart

import (
	"go-apparel-api/internal/logo"
)

// LineItemProduct is one garment unit inside a bundle line item.
type LineItemProduct struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// LineItem is the canonical shape the assembler produces and the cart owns.
// The wizard never mutates it after submission.
type LineItem struct {
	ID              string            `json:"id"`
	BundleID        string            `json:"bundleId"`
	Title           string            `json:"title"`
	Price           float64           `json:"price"`
	Thumbnail       string            `json:"thumbnail"`
	Method          string            `json:"method"`
	Position        []string          `json:"position"`
	Products        []LineItemProduct `json:"products"`
	Quantity        int32             `json:"quantity"`
	Logo            *logo.Envelope    `json:"logo,omitempty"`
	UsePreviousLogo bool              `json:"usePreviousLogo"`
	Notes           string            `json:"notes"`
}

func (li LineItem) HasLogo() bool {
	return li.Logo != nil && li.Logo.Content() != nil
}

// Promo is a server-validated discount applied to the whole cart.
type Promo struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discountPercent"`
}

type ItemResponse struct {
	ID              string            `json:"id"`
	BundleID        string            `json:"bundleId"`
	Title           string            `json:"title"`
	Price           float64           `json:"price"`
	Thumbnail       string            `json:"thumbnail"`
	Method          string            `json:"method"`
	Position        []string          `json:"position"`
	Products        []LineItemProduct `json:"products"`
	Quantity        int32             `json:"quantity"`
	HasLogo         bool              `json:"hasLogo"`
	UsePreviousLogo bool              `json:"usePreviousLogo"`
	Notes           string            `json:"notes"`
}

type DetailResponse struct {
	Items []ItemResponse `json:"items"`
	Promo *Promo         `json:"promo,omitempty"`
}

type UpdateQtyRequest struct {
	Qty int32 `json:"qty" validate:"required,gt=0"`
}

// SetShippingRequest pins the shipping cost chosen on a prior page. A null
// cost restores threshold-based shipping.
type SetShippingRequest struct {
	Cost *float64 `json:"cost" validate:"omitempty,gte=0"`
}

type SubmitResponse struct {
	Phase   Phase  `json:"phase"`
	ItemID  string `json:"itemId"`
	Message string `json:"message,omitempty"`
	LogoURL string `json:"logoUrl,omitempty"`
}
