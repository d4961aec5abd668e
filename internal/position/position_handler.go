package position

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// List returns the canonical garment positions.
// GET /positions
func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "", ListResponse{Positions: All()})
}

type ListResponse struct {
	Positions []Position `json:"positions"`
}
