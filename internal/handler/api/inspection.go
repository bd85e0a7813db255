package api

import (
	"net/http"

	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/handler/httperr"
	"rugboost-api/internal/handler/middleware"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errs.New("authenticated user missing from context")

type InspectionHandler struct {
	cmds commands.InspectionCommands
	q    queries.InspectionQueries
}

func NewInspectionHandler(cmds commands.InspectionCommands, q queries.InspectionQueries) *InspectionHandler {
	return &InspectionHandler{cmds: cmds, q: q}
}

// @Summary Build inspection report
// @Description Categorize each rug's services and compute the estimate totals
// @Tags inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InspectionReportRequest true "Inspection details"
// @Success 200 {object} resdto.InspectionReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /inspections/report [post]
func (h *InspectionHandler) BuildReport(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.InspectionReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service line item", err.Error())
		return
	}

	report, err := h.q.BuildReport(c.Request.Context(), userID, input)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInspectionReport(report))
}

// @Summary Notify client
// @Description Email the client that their inspection report is ready
// @Tags inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param request body reqdto.NotifyClientRequest true "Notification details"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /inspections/{jobId}/notify [post]
func (h *InspectionHandler) NotifyClient(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid job id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Unauthorized", nil)
		return
	}
	var req reqdto.NotifyClientRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.NotifyClient(c.Request.Context(), userID, req.ToDomain(jobID)); err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidNotification):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, commands.ErrNotificationFailed.Error(), nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}
