package cart

import (
	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.AuthMiddleware())
	{
		carts.GET("/detail", handler.Detail)
		carts.PUT("/shipping", handler.SetShipping)
		carts.DELETE("", handler.Delete)

		items := carts.Group("/items/:itemId")
		{
			items.PATCH("", handler.UpdateQty)
			items.DELETE("", handler.DeleteItem)
		}
	}
}
