package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/pkg/response"
)

type Handler struct {
	client Client
}

func NewHandler(client Client) *Handler {
	return &Handler{client: client}
}

// Bundles lists the configurable bundles.
// GET /bundles
func (h *Handler) Bundles(c *gin.Context) {
	bundles, err := h.client.Bundles(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", bundles)
}

// Bundle returns one bundle with its products.
// GET /bundles/:bundleId
func (h *Handler) Bundle(c *gin.Context) {
	b, err := h.client.Bundle(c, c.Param("bundleId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", b)
}

// Products lists customizable standalone products.
// GET /products
func (h *Handler) Products(c *gin.Context) {
	products, err := h.client.Products(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", products)
}
