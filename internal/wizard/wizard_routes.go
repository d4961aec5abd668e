package wizard

import (
	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wiz := r.Group("/wizard")
	wiz.Use(middleware.AuthMiddleware())
	{
		wiz.POST("/open", handler.Open)

		session := wiz.Group("/:bundleId")
		{
			session.POST("/method", handler.SelectMethod)
			session.POST("/positions", handler.CompletePositions)
			session.POST("/logo-method", handler.ChooseLogoMethod)
			session.POST("/logo/text", handler.CaptureTextLogo)
			session.POST("/logo/image", handler.CaptureImageLogo)
			session.POST("/logo/previous", handler.SelectPreviousLogo)
			session.PATCH("/notes", handler.UpdateNotes)
			session.POST("/back", handler.Back)
			session.POST("/close", handler.Close)
		}
	}
}
