//go:build e2e

package social_test

import (
	"net/http"
	"strings"
	"testing"

	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/infra/socialstore"
	reqdto "rugboost-api/internal/handler/dto/request"
	resdto "rugboost-api/internal/handler/dto/response"
	"rugboost-api/tests/common/authtest"
	"rugboost-api/tests/common/builder"
	"rugboost-api/tests/common/httptest"
	"rugboost-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const postsURL = "/api/admin/social-posts"

type socialSuite struct {
	e2e.SharedSuite
	adminToken string
}

type listResponse struct {
	Posts []resdto.SocialPostResponse `json:"posts"`
}

func TestSocialSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(socialSuite))
}

func (s *socialSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.adminToken = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), uuid.New(), user.RoleAdmin)
}

// start every subtest from an empty planner rather than the seeded samples
func (s *socialSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	_, err := s.DB.Exec(s.T().Context(), "INSERT INTO kv_store (key, value) VALUES ($1, '[]')", socialstore.Key)
	require.NoError(s.T(), err)
}

func (s *socialSuite) create(t *testing.T, req reqdto.SocialPostRequest) resdto.SocialPostResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, postsURL, req, s.adminToken)
	var post resdto.SocialPostResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &post)
	return post
}

func (s *socialSuite) list(t *testing.T, query string) []resdto.SocialPostResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, postsURL+query, nil, s.adminToken)
	var res listResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res.Posts
}

func (s *socialSuite) TestAccessControl() {
	helper := authtest.NewJWTHelper(s.Config.JWT)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "no token", token: "", expectedStatus: http.StatusUnauthorized},
		{name: "staff is not enough", token: helper.GenerateToken(s.T(), uuid.New(), user.RoleStaff), expectedStatus: http.StatusForbidden},
		{name: "expired admin token", token: helper.CreateExpiredToken(s.T(), uuid.New(), user.RoleAdmin), expectedStatus: http.StatusUnauthorized},
		{name: "admin", token: s.adminToken, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, postsURL, nil, tt.token)
			assert.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *socialSuite) TestDefaultsSeededOnFirstRead() {
	s.Run("missing document is seeded with the sample posts", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(), "DELETE FROM kv_store WHERE key = $1", socialstore.Key)
		require.NoError(t, err)

		posts := s.list(t, "")
		require.Len(t, posts, 3)
		assert.Equal(t, "sample-1", posts[0].ID)

		var stored int
		err = s.DB.QueryRow(t.Context(), "SELECT count(*) FROM kv_store WHERE key = $1", socialstore.Key).Scan(&stored)
		require.NoError(t, err)
		assert.Equal(t, 1, stored)
	})
}

func (s *socialSuite) TestLifecycle() {
	s.Run("create, list, update, duplicate and delete", func() {
		t := s.T()

		assert.Empty(t, s.list(t, ""))

		first := s.create(t, builder.NewSocialPostBuilder().BuildRequest())
		second := s.create(t, builder.NewSocialPostBuilder().With(func(b *builder.SocialPostBuilder) {
			b.Platform = "twitter"
			b.Content = "Spring cleaning special"
			b.Hashtags = []string{"#spring", "spring", "rugs"}
		}).BuildRequest())

		assert.Equal(t, "Instagram", first.PlatformLabel)
		assert.Equal(t, 2200, first.CharLimit)
		assert.Equal(t, []string{"spring", "rugs"}, second.Hashtags)
		assert.Equal(t, 280-len("Spring cleaning special"), second.Remaining)

		posts := s.list(t, "")
		require.Len(t, posts, 2)
		assert.Equal(t, second.ID, posts[0].ID, "newest first")

		twitter := s.list(t, "?platform=twitter")
		require.Len(t, twitter, 1)
		assert.Equal(t, second.ID, twitter[0].ID)

		update := builder.NewSocialPostBuilder().With(func(b *builder.SocialPostBuilder) {
			b.Content = "Updated caption"
			b.Status = "published"
		}).BuildRequest()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, postsURL+"/"+first.ID, update, s.adminToken)
		var updated resdto.SocialPostResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		assert.Equal(t, "Updated caption", updated.Content)
		assert.True(t, first.CreatedAt.Equal(updated.CreatedAt))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, postsURL+"/"+first.ID+"/duplicate", nil, s.adminToken)
		var dup resdto.SocialPostResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &dup)
		assert.NotEqual(t, first.ID, dup.ID)
		assert.Equal(t, "draft", string(dup.Status))
		assert.Equal(t, "Updated caption", dup.Content)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, postsURL+"/"+second.ID, nil, s.adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)

		posts = s.list(t, "")
		require.Len(t, posts, 2)
		assert.Equal(t, dup.ID, posts[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, postsURL+"/"+second.ID, nil, s.adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Post not found")
	})
}

func (s *socialSuite) TestValidation() {
	tests := []struct {
		name   string
		mutate func(*builder.SocialPostBuilder)
	}{
		{name: "unknown platform", mutate: func(b *builder.SocialPostBuilder) { b.Platform = "myspace" }},
		{name: "content over the platform limit", mutate: func(b *builder.SocialPostBuilder) {
			b.Platform = "twitter"
			b.Content = strings.Repeat("x", 281)
		}},
		{name: "empty content", mutate: func(b *builder.SocialPostBuilder) { b.Content = "  " }},
		{name: "bad schedule", mutate: func(b *builder.SocialPostBuilder) {
			bad := "next tuesday"
			b.ScheduledFor = &bad
		}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			req := builder.NewSocialPostBuilder().With(tt.mutate).BuildRequest()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, postsURL, req, s.adminToken)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Empty(t, s.list(t, ""))
		})
	}
}

func (s *socialSuite) TestReplaceAll() {
	s.Run("duplicate ids are rejected and nothing is written", func() {
		t := s.T()
		post := builder.NewSocialPostBuilder().BuildDomain()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, postsURL, map[string]any{
			"posts": []any{post, post},
		}, s.adminToken)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.Empty(t, s.list(t, ""))
	})

	s.Run("replaces the stored list", func() {
		t := s.T()
		s.create(t, builder.NewSocialPostBuilder().BuildRequest())

		a := builder.NewSocialPostBuilder().BuildDomain()
		b := builder.NewSocialPostBuilder().With(func(b *builder.SocialPostBuilder) { b.Platform = "linkedin" }).BuildDomain()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, postsURL, map[string]any{
			"posts": []any{a, b},
		}, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		posts := s.list(t, "")
		require.Len(t, posts, 2)
		assert.Equal(t, a.ID, posts[0].ID)
		assert.Equal(t, b.ID, posts[1].ID)
	})
}
