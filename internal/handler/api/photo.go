package api

import (
	"net/http"

	"rugboost-api/internal/domain/photo"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	q queries.PhotoQueries
}

func NewPhotoHandler(q queries.PhotoQueries) *PhotoHandler {
	return &PhotoHandler{q: q}
}

// @Summary List capture steps
// @Description Required photo steps in capture order
// @Tags photo-capture
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PhotoStepResponse
// @Router /photo-capture/steps [get]
func (h *PhotoHandler) Steps(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPhotoSteps(photo.Steps))
}

// @Summary Plan photo capture
// @Description Replay capture actions and return the ordered photo set
// @Tags photo-capture
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PhotoPlanRequest true "Capture actions"
// @Success 200 {object} resdto.PhotoPlanResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /photo-capture/plan [post]
func (h *PhotoHandler) Plan(c *gin.Context) {
	var req reqdto.PhotoPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	plan, err := h.q.Plan(req.ToDomain())
	if err != nil {
		if errs.Is(err, queries.ErrPhotoPlanRejected) {
			var detail any
			if plan != nil {
				detail = resdto.FromPhotoPlan(plan)
			}
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, rejectionMessage(err), detail)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPhotoPlan(plan))
}

func rejectionMessage(err error) string {
	if target, ok := publicError(err,
		photo.ErrSupplementaryFull,
		photo.ErrUnknownStep,
		photo.ErrRequiredIncomplete,
		photo.ErrEmptyRef,
		photo.ErrUnknownAction,
	); ok {
		return target.Error()
	}
	return "Capture action rejected"
}
