package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-apparel-api/internal/backend"
	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/catalog"
	"go-apparel-api/internal/checkout"
	"go-apparel-api/internal/cloudinary"
	"go-apparel-api/internal/logo"
	"go-apparel-api/internal/messaging/kafka/producer"
	"go-apparel-api/internal/payments"
	"go-apparel-api/internal/position"
	"go-apparel-api/internal/promo"
	"go-apparel-api/internal/wizard"
)

type registryDeps struct {
	redis         *redis.Client
	kafkaWriter   *kafka.Writer
	cloudinarySvc cloudinary.Service
}

func newCloudinaryService() (cloudinary.Service, error) {
	return cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		"apparel-logos",
	)
}

func registerModules(router *gin.Engine, deps registryDeps) {
	logger := zap.L()

	// --- External collaborators ---
	backendClient := backend.NewClient(os.Getenv("BACKEND_BASE_URL"), logger)
	catalogClient := catalog.NewClient(backendClient)
	logoHistory := logo.NewHistory(backendClient, deps.redis, logger)
	publisher := producer.NewPublisher(deps.kafkaWriter)

	// --- State ---
	cartStores := cart.NewManager(deps.redis, logger)
	wizardStore := wizard.NewRedisStore(deps.redis)

	// --- Services ---
	cartService := cart.NewService(cart.Deps{
		Stores:   cartStores,
		Writer:   cart.NewWriter(backendClient),
		Uploader: deps.cloudinarySvc,
		Logger:   logger,
	})
	wizardService := wizard.NewService(wizard.Deps{
		Store:   wizardStore,
		Catalog: catalogClient,
		CartSvc: cartService,
		Logger:  logger,
	})
	promoService := promo.NewService(promo.Deps{
		Stores:    cartStores,
		Validator: promo.NewBackendValidator(backendClient),
		Logger:    logger,
	})
	paymentService := payments.NewService()
	checkoutService := checkout.NewService(checkout.Deps{
		Stores:     cartStores,
		CartSvc:    cartService,
		PaymentSvc: paymentService,
		Publisher:  publisher,
		Logger:     logger,
	})

	// --- Handlers ---
	positionHandler := position.NewHandler()
	catalogHandler := catalog.NewHandler(catalogClient)
	logoHandler := logo.NewHandler(logoHistory)
	cartHandler := cart.NewHandler(cartService)
	wizardHandler := wizard.NewHandler(wizardService, logger)
	promoHandler := promo.NewHandler(promoService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		position.RegisterRoutes(api, positionHandler)
		catalog.RegisterRoutes(api, catalogHandler)
		logo.RegisterRoutes(api, logoHandler)
		cart.RegisterRoutes(api, cartHandler)
		wizard.RegisterRoutes(api, wizardHandler)
		promo.RegisterRoutes(api, promoHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
