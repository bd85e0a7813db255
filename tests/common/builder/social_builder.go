//go:build unit || e2e

package builder

import (
	"time"

	"rugboost-api/internal/domain/social"
	reqdto "rugboost-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SocialPostBuilder struct {
	ID           string
	Platform     string
	Content      string
	Hashtags     []string
	ScheduledFor *string
	Status       string
	CreatedAt    time.Time
}

func NewSocialPostBuilder() *SocialPostBuilder {
	return &SocialPostBuilder{
		ID:        uuid.NewString(),
		Platform:  "instagram",
		Content:   "Before and after: a 1920s Heriz restored to life",
		Hashtags:  []string{"#rugcleaning", "#restoration"},
		Status:    "draft",
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *SocialPostBuilder) With(mutate func(*SocialPostBuilder)) *SocialPostBuilder {
	mutate(s)
	return s
}

func (s *SocialPostBuilder) BuildRequest() reqdto.SocialPostRequest {
	return reqdto.SocialPostRequest{
		Platform:     s.Platform,
		Content:      s.Content,
		Hashtags:     s.Hashtags,
		ScheduledFor: s.ScheduledFor,
		Status:       s.Status,
	}
}

func (s *SocialPostBuilder) BuildDomain() social.SocialPost {
	return social.SocialPost{
		ID:           s.ID,
		Platform:     social.Platform(s.Platform),
		Content:      s.Content,
		Hashtags:     s.Hashtags,
		ScheduledFor: s.ScheduledFor,
		Status:       social.Status(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.CreatedAt,
	}
}
