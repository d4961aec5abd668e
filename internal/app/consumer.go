package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-apparel-api/internal/backend"
	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/messaging/kafka/consumer"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting checkout consumer...")

	// 1. Connect shared state
	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// 2. Setup cart service
	logger := zap.L()
	backendClient := backend.NewClient(os.Getenv("BACKEND_BASE_URL"), logger)
	cartService := cart.NewService(cart.Deps{
		Stores: cart.NewManager(redisClient, logger),
		Writer: cart.NewWriter(backendClient),
		Logger: logger,
	})

	// 3. Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   CheckoutTopic,
		GroupID: "checkout-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// 4. Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService)

	// 5. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
