package api

import (
	"errors"
	"net/http"

	"rugboost-api/internal/domain/profile"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/handler/middleware"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Description Get the caller's account and business profile
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /account/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	p, err := h.q.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load profile", nil)
		return
	}
	h.respond(c, p)
}

// @Summary Update profile
// @Description Save the caller's profile; blank fields are cleared
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /account/profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	edit, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	p, err := h.cmds.Update(c.Request.Context(), userID, edit)
	if err != nil {
		var fieldErr *profile.FieldError
		switch {
		case errors.As(err, &fieldErr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, fieldErr.Error(), nil)
		case errors.Is(err, profile.ErrInvalidBusinessEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business email", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save profile", nil)
		}
		return
	}
	h.respond(c, p)
}

// @Summary Remove logo
// @Description Clear the caller's business logo
// @Tags account
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /account/profile/logo [delete]
func (h *ProfileHandler) RemoveLogo(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	if err := h.cmds.RemoveLogo(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to remove logo", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) respond(c *gin.Context, p *profile.Profile) {
	res, err := resdto.FromProfile(p)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render profile", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
