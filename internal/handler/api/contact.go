package api

import (
	"net/http"

	"rugboost-api/internal/domain/contact"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Send contact message
// @Description Relay a contact form submission to the support inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact form"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 429 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortFlat(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if _, err := h.cmds.Submit(c.Request.Context(), req.ToDomain()); err != nil {
		if contact.IsValidationError(err) {
			httperr.AbortFlat(c, http.StatusBadRequest, err, err.Error())
			return
		}
		httperr.AbortFlat(c, http.StatusInternalServerError, err, commands.ErrContactDelivery.Error())
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}
