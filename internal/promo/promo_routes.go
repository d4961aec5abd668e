package promo

import (
	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	promos := r.Group("/promos")
	{
		promos.GET("/active", handler.Active)

		authed := promos.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/apply", handler.Apply)
			authed.DELETE("", handler.Remove)
		}
	}
}
