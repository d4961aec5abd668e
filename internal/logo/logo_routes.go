package logo

import (
	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logos := r.Group("/logos")
	logos.Use(middleware.AuthMiddleware())
	{
		logos.GET("/previous", handler.Previous)
	}
}
