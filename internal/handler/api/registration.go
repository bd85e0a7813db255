package api

import (
	"net/http"

	"rugboost-api/internal/domain/registration"
	"rugboost-api/internal/domain/user"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	cmds commands.RegistrationCommands
}

func NewRegistrationHandler(cmds commands.RegistrationCommands) *RegistrationHandler {
	return &RegistrationHandler{cmds: cmds}
}

// @Summary Complete client registration
// @Description Set the password for an invited client and link their account
// @Tags registration
// @Accept json
// @Produce json
// @Param request body reqdto.CompleteRegistrationRequest true "Registration request"
// @Success 200 {object} resdto.RegistrationResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 403 {object} resdto.ErrorResponse
// @Failure 429 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /registration/complete [post]
func (h *RegistrationHandler) Complete(c *gin.Context) {
	var req reqdto.CompleteRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortFlat(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Complete(c.Request.Context(), req.ToDomain())
	if err != nil {
		if target, ok := publicError(err, registration.ErrEmailMismatch); ok {
			httperr.AbortFlat(c, http.StatusForbidden, err, target.Error())
			return
		}
		if target, ok := publicError(err,
			registration.ErrMissingFields,
			registration.ErrPasswordTooShort,
			registration.ErrPasswordTooLong,
			registration.ErrPasswordNoUpper,
			registration.ErrPasswordNoLower,
			registration.ErrPasswordNoDigit,
			registration.ErrInvalidAccessToken,
			registration.ErrLegacyInvite,
			user.ErrInvalidEmail,
		); ok {
			httperr.AbortFlat(c, http.StatusBadRequest, err, target.Error())
			return
		}
		httperr.AbortFlat(c, http.StatusInternalServerError, err, commands.ErrRegistrationFailed.Error())
		return
	}

	c.JSON(http.StatusOK, resdto.FromRegistrationResult(result))
}
