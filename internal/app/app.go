package app

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CheckoutTopic carries the checkout lifecycle events between the API and
// the consumer.
const CheckoutTopic = "checkout.events"

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		return err
	}

	// 2. Setup Third Party Services
	cloudinaryService, err := newCloudinaryService()
	if err != nil {
		return err
	}

	// 3. Register Modules & Routes
	registerModules(router, registryDeps{
		redis:         redisClient,
		kafkaWriter:   kafkaWriter,
		cloudinarySvc: cloudinaryService,
	})

	return nil
}
