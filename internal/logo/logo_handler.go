package logo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-apparel-api/internal/pkg/response"
)

type Handler struct {
	history History
}

func NewHandler(history History) *Handler {
	return &Handler{history: history}
}

// Previous lists logo URLs from the shopper's earlier orders and cart
// entries, for the "use a previous logo" option.
// GET /logos/previous
func (h *Handler) Previous(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	token := c.GetString("auth_token")

	urls, err := h.history.Previous(c, userID, token)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", urls)
}
