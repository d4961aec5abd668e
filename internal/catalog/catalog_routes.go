package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/bundles", handler.Bundles)
	r.GET("/bundles/:bundleId", handler.Bundle)
	r.GET("/products", handler.Products)
}
