package payments

type CreateSessionRequest struct {
	OrderID     string           `json:"orderId"`
	GrossAmount int64            `json:"grossAmount"`
	Customer    *CustomerDetails `json:"customer"`
	Shipping    *Address         `json:"shipping"`
	Items       []ItemDetail     `json:"items"`
}

// Address is the delivery address attached to the gateway session.
type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type CustomerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ItemDetail struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
	Qty   int32  `json:"qty"`
	Name  string `json:"name"`
}

type CreateSessionResponse struct {
	SessionID   string `json:"sessionId"`
	Token       string `json:"snapToken"`
	RedirectURL string `json:"redirectUrl"`
}
