//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rugboost-api/internal/domain/registration"
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/handler/api"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/tests/common/builder"
	"rugboost-api/tests/common/httptest"
	commandsmock "rugboost-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRegistrationCommands
}

func (s *RegistrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	handler := api.NewRegistrationHandler(s.mockCommands)

	s.router.POST("/registration/complete", handler.Complete)
}

func (s *RegistrationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}

func (s *RegistrationHandlerTestSuite) TestComplete() {
	url := "/registration/complete"
	reqBody := builder.NewRegistrationBuilder().BuildRequest()

	s.Run("success: returns the linked user", func() {
		userID := uuid.New()
		s.mockCommands.EXPECT().Complete(gomock.Any(), registration.Request{
			AccessToken: reqBody.AccessToken,
			Email:       reqBody.Email,
			Password:    reqBody.Password,
		}).Return(&registration.Result{UserID: userID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.False(body.IsNewUser)
		s.Equal(userID.String(), body.UserID)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "email mismatch is forbidden", err: registration.ErrEmailMismatch, expectCode: http.StatusForbidden, expectMsg: registration.ErrEmailMismatch.Error()},
		{name: "missing fields", err: registration.ErrMissingFields, expectCode: http.StatusBadRequest, expectMsg: registration.ErrMissingFields.Error()},
		{name: "short password", err: registration.ErrPasswordTooShort, expectCode: http.StatusBadRequest, expectMsg: registration.ErrPasswordTooShort.Error()},
		{name: "long password", err: registration.ErrPasswordTooLong, expectCode: http.StatusBadRequest, expectMsg: registration.ErrPasswordTooLong.Error()},
		{name: "no digit", err: registration.ErrPasswordNoDigit, expectCode: http.StatusBadRequest, expectMsg: registration.ErrPasswordNoDigit.Error()},
		{name: "invalid email", err: user.ErrInvalidEmail, expectCode: http.StatusBadRequest, expectMsg: user.ErrInvalidEmail.Error()},
		{name: "unknown token", err: registration.ErrInvalidAccessToken, expectCode: http.StatusBadRequest, expectMsg: registration.ErrInvalidAccessToken.Error()},
		{name: "legacy invite", err: registration.ErrLegacyInvite, expectCode: http.StatusBadRequest, expectMsg: registration.ErrLegacyInvite.Error()},
		{
			name:       "storage failure is generic",
			err:        errs.Mark(errors.New("connection reset"), commands.ErrRegistrationFailed),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Failed to complete registration",
		},
	}

	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertFlatErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: wrapped rejections keep their public text", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(registration.ErrEmailMismatch, "tx")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertFlatErrorResponse(s.T(), rec, http.StatusForbidden, registration.ErrEmailMismatch.Error())
	})
}
