package consumer

import (
	"context"
	"encoding/json"
	"log"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/checkout"
)

func handleCheckoutCompleted(ctx context.Context, payload []byte, cartService cart.Service) error {
	var data checkout.CheckoutCompletedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Clearing cart for user: %s", data.UserID)

	if err := cartService.Clear(ctx, data.UserID); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Cart cleared successfully for user: %s", data.UserID)
	return nil
}
