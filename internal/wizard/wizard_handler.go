package wizard

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/logo"
	"go-apparel-api/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("wizard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wizard.handler")
	}
	return &Handler{service: svc, logger: l}
}

// Open starts or resumes a session.
// POST /wizard/open
func (h *Handler) Open(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	session, err := h.service.Open(c, userID, req.BundleID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// SelectMethod records the method; on the confirmation pass it submits.
// POST /wizard/:bundleId/method
func (h *Handler) SelectMethod(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	token := c.GetString("auth_token")

	var req SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	result, err := h.service.SelectMethod(c, userID, token, c.Param("bundleId"), req.Method)
	if err != nil {
		if result.Outcome != nil {
			// Failed durable write: surface the message with the outcome so
			// the client can reconcile its optimistic state.
			response.Error(c, http.StatusBadGateway, "SUBMIT_FAILED", result.Outcome.Message, toSubmitResponse(result))
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSubmitResponse(result))
}

func toSubmitResponse(result SelectMethodResult) SubmitResponse {
	res := SubmitResponse{
		Submitted: result.Submitted,
		Session:   toSessionResponse(result.Session),
	}
	if result.Outcome != nil {
		res.Outcome = &cart.SubmitResponse{
			Phase:   result.Outcome.Phase,
			ItemID:  result.Outcome.Item.ID,
			Message: result.Outcome.Message,
			LogoURL: result.Outcome.LogoURL,
		}
	}
	return res
}

// CompletePositions stores the position selection.
// POST /wizard/:bundleId/positions
func (h *Handler) CompletePositions(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req PositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	session, err := h.service.CompletePositions(c, userID, c.Param("bundleId"), req.Positions)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// ChooseLogoMethod picks text vs image capture.
// POST /wizard/:bundleId/logo-method
func (h *Handler) ChooseLogoMethod(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req LogoMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	session, err := h.service.ChooseLogoMethod(c, userID, c.Param("bundleId"), req.Choice)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// CaptureTextLogo finishes logo capture with a text logo.
// POST /wizard/:bundleId/logo/text
func (h *Handler) CaptureTextLogo(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req TextLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	session, err := h.service.CaptureTextLogo(c, userID, c.Param("bundleId"), req.Line, req.Font)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// CaptureImageLogo finishes logo capture with an uploaded image.
// POST /wizard/:bundleId/logo/image  (multipart, field "logo")
func (h *Handler) CaptureImageLogo(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Logo file is required", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Could not read logo file", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, logo.MaxUploadSize+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Could not read logo file", err.Error())
		return
	}

	upload := &logo.Upload{
		Filename: fileHeader.Filename,
		MIME:     fileHeader.Header.Get("Content-Type"),
		Data:     data,
	}

	session, err := h.service.CaptureImageLogo(c, userID, c.Param("bundleId"), upload)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// SelectPreviousLogo finishes logo capture by reusing an earlier logo.
// POST /wizard/:bundleId/logo/previous
func (h *Handler) SelectPreviousLogo(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req PreviousLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	session, err := h.service.SelectPreviousLogo(c, userID, c.Param("bundleId"), req.URL)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// UpdateNotes stores free-form notes on the configuration.
// PATCH /wizard/:bundleId/notes
func (h *Handler) UpdateNotes(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid input", err.Error())
		return
	}

	session, err := h.service.UpdateNotes(c, userID, c.Param("bundleId"), req.Notes)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// Back moves one step backward.
// POST /wizard/:bundleId/back
func (h *Handler) Back(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	session, err := h.service.Back(c, userID, c.Param("bundleId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", toSessionResponse(session))
}

// Close abandons the session.
// POST /wizard/:bundleId/close
func (h *Handler) Close(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	if err := h.service.Close(c, userID, c.Param("bundleId")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", nil)
}
