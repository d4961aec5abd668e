package checkout

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

// Quote returns the live price breakdown for the current cart.
// GET /checkout/quote
func (h *Handler) Quote(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Quote(c, userID, userID != "")
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// Checkout creates the hosted payment session.
// POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	res, err := h.service.Checkout(c, userID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Checkout session created", res)
}
