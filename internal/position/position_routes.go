package position

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	positions := r.Group("/positions")
	{
		positions.GET("", handler.List)
	}
}
