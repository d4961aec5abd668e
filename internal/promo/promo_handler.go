package promo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// Apply attaches a validated promo code to the cart.
// POST /promos/apply
func (h *Handler) Apply(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	token := c.GetString("auth_token")

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	res, err := h.service.Apply(c, userID, token, req.Code)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res.Message, res)
}

// Remove clears the active promo.
// DELETE /promos
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	if err := h.service.Remove(c, userID); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Promo code removed", nil)
}

// Active lists running promotions.
// GET /promos/active
func (h *Handler) Active(c *gin.Context) {
	promos, err := h.service.Active(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", promos)
}
