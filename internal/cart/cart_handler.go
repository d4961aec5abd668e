package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Detail returns the user's local cart state.
// GET /cart/detail
func (h *Handler) Detail(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Detail(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}

// UpdateQty updates one line item's quantity.
// PATCH /cart/items/:itemId
func (h *Handler) UpdateQty(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	if err := h.service.UpdateQty(ctx, userID, ctx.Param("itemId"), req); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", nil)
}

// DeleteItem removes one line item.
// DELETE /cart/items/:itemId
func (h *Handler) DeleteItem(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	if err := h.service.RemoveItem(ctx, userID, ctx.Param("itemId")); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", nil)
}

// SetShipping pins or releases the cart's shipping cost override.
// PUT /cart/shipping
func (h *Handler) SetShipping(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	var req SetShippingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	if err := h.service.SetShipping(ctx, userID, req); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", nil)
}

// Delete empties the cart.
// DELETE /cart
func (h *Handler) Delete(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	if err := h.service.Clear(ctx, userID); err != nil {
		response.FromError(ctx, err)
		return
	}

	response.Success(ctx, http.StatusOK, "", nil)
}
