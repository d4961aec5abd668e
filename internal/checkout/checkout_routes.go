package checkout

import (
	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	{
		// Quote works for guests too; the discount just stays at zero.
		quote := co.Group("")
		quote.Use(middleware.AuthOptionalMiddleware())
		quote.GET("/quote", handler.Quote)

		authed := co.Group("")
		authed.Use(middleware.AuthMiddleware())
		authed.POST("", handler.Checkout)
	}
}
