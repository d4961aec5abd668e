package consumer

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/checkout"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, cartService cart.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == checkout.EventCheckoutCompleted {
			if err := handleCheckoutCompleted(ctx, msg.Value, cartService); err != nil {
				log.Printf("[CONSUMER] Error handling %s: %v", checkout.EventCheckoutCompleted, err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
