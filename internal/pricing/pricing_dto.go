package pricing

// Breakdown is the JSON shape of a price snapshot. Amounts are rendered as
// fixed two-decimal strings so clients never see float noise.
type Breakdown struct {
	Subtotal            string `json:"subtotal"`
	LogoEmbroideryTotal string `json:"logoEmbroideryTotal"`
	NewLogoSetupTotal   string `json:"newLogoSetupTotal"`
	TotalAmount         string `json:"totalAmount"`
	DiscountAmount      string `json:"discountAmount"`
	ShippingCost        string `json:"shippingCost"`
	FinalAmount         string `json:"finalAmount"`
}

func (s Snapshot) Breakdown() Breakdown {
	return Breakdown{
		Subtotal:            s.Subtotal.StringFixed(2),
		LogoEmbroideryTotal: s.LogoEmbroideryTotal.StringFixed(2),
		NewLogoSetupTotal:   s.NewLogoSetupTotal.StringFixed(2),
		TotalAmount:         s.TotalAmount.StringFixed(2),
		DiscountAmount:      s.DiscountAmount.StringFixed(2),
		ShippingCost:        s.ShippingCost.StringFixed(2),
		FinalAmount:         s.FinalAmount.StringFixed(2),
	}
}
