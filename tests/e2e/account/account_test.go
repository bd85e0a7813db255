//go:build e2e

package account_test

import (
	"net/http"
	"testing"

	"rugboost-api/internal/domain/inspection"
	"rugboost-api/internal/domain/user"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/tests/common/authtest"
	"rugboost-api/tests/common/builder"
	"rugboost-api/tests/common/dbtest"
	"rugboost-api/tests/common/httptest"
	"rugboost-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	profileURL = "/api/account/profile"
	logoURL    = "/api/account/profile/logo"
	reportURL  = "/api/inspections/report"
	stepsURL   = "/api/photo-capture/steps"
)

type accountSuite struct {
	e2e.SharedSuite
	jwt     *authtest.JWTHelper
	staffID uuid.UUID
	token   string
}

func TestAccountSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(accountSuite))
}

func (s *accountSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *accountSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.staffID = dbtest.CreateAuthUser(s.T(), s.DB, "owner@example.com")
	s.token = s.jwt.GenerateToken(s.T(), s.staffID, user.RoleStaff)
}

func (s *accountSuite) TestProfile() {
	s.Run("unsaved profile is empty", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, s.token)
		var res resdto.ProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, s.staffID.String(), res.UserID)
		assert.Nil(t, res.BusinessName)
	})

	s.Run("session cookie authenticates without a header", func() {
		t := s.T()
		cookies := []*http.Cookie{s.jwt.SessionCookie(t, s.staffID, user.RoleStaff)}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, profileURL, nil, nil, cookies)
		var res resdto.ProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, s.staffID.String(), res.UserID)
	})

	s.Run("update trims fields and clears blanks", func() {
		t := s.T()
		req := reqdto.UpdateProfileRequest{
			FullName:      "  Pat Owner ",
			BusinessName:  "Heritage Rug Works",
			BusinessPhone: "   ",
			BusinessEmail: "hello@heritage.example",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL, req, s.token)
		var res resdto.ProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotNil(t, res.FullName)
		assert.Equal(t, "Pat Owner", *res.FullName)
		assert.Nil(t, res.BusinessPhone)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, s.token)
		var got resdto.ProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.NotNil(t, got.BusinessName)
		assert.Equal(t, "Heritage Rug Works", *got.BusinessName)
	})

	s.Run("invalid business email", func() {
		t := s.T()
		req := reqdto.UpdateProfileRequest{BusinessEmail: "nope"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL, req, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid business email")
	})

	s.Run("logo removal", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(),
			"INSERT INTO profiles (user_id, logo_url) VALUES ($1, 'https://cdn.example/logo.png')", s.staffID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, logoURL, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, s.token)
		var got resdto.ProfileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		assert.Nil(t, got.LogoURL)
	})

	s.Run("client role can manage their own profile", func() {
		t := s.T()
		clientID := dbtest.CreateAuthUser(t, s.DB, "client@example.com")
		token := s.jwt.GenerateToken(t, clientID, user.RoleClient)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, profileURL, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func (s *accountSuite) TestInspectionReport() {
	s.Run("report is branded with the profile business name", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL,
			reqdto.UpdateProfileRequest{BusinessName: "Heritage Rug Works"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reportURL, builder.NewInspectionBuilder().BuildRequest(), s.token)
		var report resdto.InspectionReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)

		assert.Equal(t, "Heritage Rug Works", report.BusinessName)
		require.Len(t, report.Rugs, 1)
		rug := report.Rugs[0]
		assert.Equal(t, "8' × 5'", rug.Dimensions)
		require.Len(t, rug.Services.Required, 1)
		require.Len(t, rug.Services.Recommended, 1)
		require.Len(t, rug.Services.Preventative, 1)
		assert.Equal(t, int64(24550), report.Totals.Grand.Cents)
		assert.Equal(t, "$245.50", report.Totals.Final.Formatted)
	})

	s.Run("declined tiers are excluded from the final total", func() {
		t := s.T()
		declined := false
		req := builder.NewInspectionBuilder().BuildRequest()
		req.AcceptRecommended = &declined
		req.AcceptPreventative = &declined

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reportURL, req, s.token)
		var report resdto.InspectionReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
		assert.Equal(t, inspection.DefaultBusinessName, report.BusinessName)
		assert.Equal(t, int64(24550), report.Totals.Grand.Cents)
		assert.Equal(t, int64(12000), report.Totals.Final.Cents)
	})

	s.Run("clients cannot build reports", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleClient)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reportURL, builder.NewInspectionBuilder().BuildRequest(), token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *accountSuite) TestNotifyClient() {
	s.Run("ready email uses the business name", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, profileURL,
			reqdto.UpdateProfileRequest{BusinessName: "Heritage Rug Works"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		req := reqdto.NotifyClientRequest{
			ClientEmail: "Client@Example.com",
			ClientName:  "Jane",
			JobNumber:   "JOB-1001",
			PortalURL:   "https://portal.example/jobs/1001",
			RugCount:    2,
			TotalAmount: 1050,
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/inspections/"+uuid.NewString()+"/notify", req, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		sent := s.Mail.Sent()
		require.Len(t, sent, 1)
		assert.Equal(t, []string{"client@example.com"}, sent[0].To)
		assert.Equal(t, `"Heritage Rug Works" <`+s.Config.Mail.FromEmail+">", sent[0].From)
		assert.Equal(t, "Your rug inspection report is ready - Job #JOB-1001", sent[0].Subject)
		assert.Contains(t, sent[0].HTML, "$1,050.00")
	})

	s.Run("bad job id", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/inspections/not-a-uuid/notify", map[string]any{}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid job id")
		assert.Empty(t, s.Mail.Sent())
	})
}

func (s *accountSuite) TestPhotoSteps() {
	s.Run("steps are listed for staff", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, stepsURL, nil, s.token)
		var steps []resdto.PhotoStepResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &steps)
		assert.NotEmpty(t, steps)
	})
}
