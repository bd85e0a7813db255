package api

import (
	"net/http"

	"rugboost-api/internal/domain/social"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var socialValidationErrors = []error{
	social.ErrInvalidPlatform,
	social.ErrInvalidStatus,
	social.ErrEmptyContent,
	social.ErrContentTooLong,
	social.ErrInvalidSchedule,
	social.ErrMissingID,
	social.ErrDuplicateID,
}

type SocialHandler struct {
	cmds commands.SocialCommands
	q    queries.SocialQueries
}

func NewSocialHandler(cmds commands.SocialCommands, q queries.SocialQueries) *SocialHandler {
	return &SocialHandler{cmds: cmds, q: q}
}

// @Summary List social posts
// @Description List planner posts, optionally filtered by platform and status
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param platform query string false "twitter, linkedin, instagram, facebook or tiktok"
// @Param status query string false "draft, scheduled or published"
// @Success 200 {array} resdto.SocialPostResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/social-posts [get]
func (h *SocialHandler) List(c *gin.Context) {
	var query reqdto.SocialPostFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	posts, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load posts", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": resdto.FromSocialPosts(posts)})
}

// @Summary Create social post
// @Tags social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SocialPostRequest true "Post"
// @Success 201 {object} resdto.SocialPostResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/social-posts [post]
func (h *SocialHandler) Create(c *gin.Context) {
	var req reqdto.SocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	post, err := h.cmds.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		h.abort(c, err, "Create post failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSocialPost(post))
}

// @Summary Replace all social posts
// @Description Overwrite the planner list
// @Tags social
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ReplaceSocialPostsRequest true "Posts"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /admin/social-posts [put]
func (h *SocialHandler) ReplaceAll(c *gin.Context) {
	var req reqdto.ReplaceSocialPostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ReplaceAll(c.Request.Context(), req.Posts); err != nil {
		h.abort(c, err, "Replace posts failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update social post
// @Tags social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body reqdto.SocialPostRequest true "Post"
// @Success 200 {object} resdto.SocialPostResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/social-posts/{id} [put]
func (h *SocialHandler) Update(c *gin.Context) {
	var req reqdto.SocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	post, err := h.cmds.Update(c.Request.Context(), c.Param("id"), req.ToDraft())
	if err != nil {
		h.abort(c, err, "Update post failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSocialPost(post))
}

// @Summary Duplicate social post
// @Tags social
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 201 {object} resdto.SocialPostResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/social-posts/{id}/duplicate [post]
func (h *SocialHandler) Duplicate(c *gin.Context) {
	post, err := h.cmds.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abort(c, err, "Duplicate post failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSocialPost(post))
}

// @Summary Delete social post
// @Tags social
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/social-posts/{id} [delete]
func (h *SocialHandler) Delete(c *gin.Context) {
	if err := h.cmds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.abort(c, err, "Delete post failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) abort(c *gin.Context, err error, fallback string) {
	if _, ok := publicError(err, social.ErrPostNotFound); ok {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Post not found", nil)
		return
	}
	if target, ok := publicError(err, socialValidationErrors...); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, target.Error(), err.Error())
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}
