//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/handler/api"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/tests/common/builder"
	"rugboost-api/tests/common/httptest"
	"rugboost-api/tests/common/testutil"
	commandsmock "rugboost-api/tests/mock/commands"
	queriesmock "rugboost-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InspectionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInspectionCommands
	mockQueries  *queriesmock.MockInspectionQueries
	staffID      uuid.UUID
}

func (s *InspectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInspectionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInspectionQueries(s.mockCtrl)
	handler := api.NewInspectionHandler(s.mockCommands, s.mockQueries)
	s.staffID = uuid.New()

	auth := stubAuth(s.staffID, user.RoleStaff)
	s.router.POST("/inspections/report", auth, handler.BuildReport)
	s.router.POST("/inspections/:jobId/notify", auth, handler.NotifyClient)
}

func (s *InspectionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInspectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(InspectionHandlerTestSuite))
}

func (s *InspectionHandlerTestSuite) TestBuildReport() {
	url := "/inspections/report"
	reqBody := builder.NewInspectionBuilder().BuildRequest()

	s.Run("success: converts dollars to cents and defaults acceptance to true", func() {
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), s.staffID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in inspection.ReportInput) (*inspection.Report, error) {
				s.Equal(inspection.AcceptAll(), in.Acceptance)
				s.Require().Len(in.Rugs, 1)
				s.Equal(int64(8550), in.Rugs[0].Services[1].UnitPriceCents)
				report := inspection.DefaultTable().BuildReport(in)
				return &report, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.InspectionReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(inspection.DefaultBusinessName, body.BusinessName)
		s.Equal("JOB-1001", body.JobNumber)
		s.Equal(int64(12000), body.Totals.Required.Cents)
		s.Equal(int64(8550), body.Totals.Recommended.Cents)
		s.Equal(int64(4000), body.Totals.Preventative.Cents)
		s.Equal("$245.50", body.Totals.Final.Formatted)
		s.True(body.AcceptRecommended)
		s.Require().Len(body.Rugs, 1)
		s.Equal([]string{}, body.Rugs[0].Uncategorized)
	})

	s.Run("success: explicit decline is passed through", func() {
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), s.staffID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in inspection.ReportInput) (*inspection.Report, error) {
				s.False(in.Acceptance.Recommended)
				s.True(in.Acceptance.Preventative)
				report := inspection.DefaultTable().BuildReport(in)
				return &report, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("acceptRecommended", false))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing jobNumber", mutate: testutil.Field("jobNumber", nil)},
		{name: "no rugs", mutate: testutil.Field("rugs", []any{})},
		{name: "rug without number", mutate: testutil.Field("rugs", []any{map[string]any{"rugType": "Persian"}})},
		{name: "negative price", mutate: testutil.Field("rugs", []any{map[string]any{
			"rugNumber": "R1",
			"services":  []any{map[string]any{"name": "Wash", "quantity": 1, "unitPrice": -5}},
		}})},
	}
	for _, tc := range validation {
		s.Run("error: 400 "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 400 for a blank service name", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("rugs", []any{map[string]any{
			"rugNumber": "R1",
			"services":  []any{map[string]any{"name": "   ", "quantity": 1, "unitPrice": 5}},
		}}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid service line item")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 500 when the report cannot be built", func() {
		s.mockQueries.EXPECT().BuildReport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to build report")
	})
}

func (s *InspectionHandlerTestSuite) TestNotifyClient() {
	jobID := uuid.New()
	url := "/inspections/" + jobID.String() + "/notify"
	reqBody := reqdto.NotifyClientRequest{
		ClientEmail: "client@example.com",
		ClientName:  "Jane",
		JobNumber:   "JOB-1001",
		PortalURL:   "https://portal.example/jobs/1001",
		RugCount:    2,
		TotalAmount: 1050.10,
	}

	s.Run("success: amount is sent in cents", func() {
		s.mockCommands.EXPECT().NotifyClient(gomock.Any(), s.staffID, commands.InspectionReadyRequest{
			JobID:            jobID,
			ClientEmail:      "client@example.com",
			ClientName:       "Jane",
			JobNumber:        "JOB-1001",
			PortalURL:        "https://portal.example/jobs/1001",
			RugCount:         2,
			TotalAmountCents: 105010,
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		var body resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("error: 400 for a non-uuid job id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/inspections/abc/notify", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid job id")
	})

	s.Run("error: 400 for a bad portal url", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("portalUrl", "not a url"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the command rejects the recipient", func() {
		s.mockCommands.EXPECT().NotifyClient(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrInvalidNotification).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notification")
	})

	s.Run("error: 500 when delivery fails", func() {
		s.mockCommands.EXPECT().NotifyClient(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrNotificationFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to send email")
	})
}
