package checkout

const (
	// EventCheckoutCompleted marks a successful hosted-session creation; the
	// consumer reacts by clearing the shopper's cart.
	EventCheckoutCompleted = "CHECKOUT_COMPLETED"

	AggregateCheckout = "checkout"
)

type CheckoutCompletedPayload struct {
	UserID  string `json:"user_id"`
	OrderID string `json:"order_id"`
}
