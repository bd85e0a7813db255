package request

import (
	"rugboost-api/internal/domain/social"
)

type SocialPostRequest struct {
	Platform     string   `json:"platform" binding:"required"`
	Content      string   `json:"content"`
	MediaURL     *string  `json:"mediaUrl"`
	Hashtags     []string `json:"hashtags"`
	ScheduledFor *string  `json:"scheduledFor"`
	Status       string   `json:"status"`
	Notes        *string  `json:"notes"`
}

func (r *SocialPostRequest) ToDraft() social.Draft {
	return social.Draft{
		Platform:     r.Platform,
		Content:      r.Content,
		MediaURL:     r.MediaURL,
		Hashtags:     r.Hashtags,
		ScheduledFor: r.ScheduledFor,
		Status:       r.Status,
		Notes:        r.Notes,
	}
}

// ReplaceSocialPostsRequest carries the whole planner list in its stored form.
type ReplaceSocialPostsRequest struct {
	Posts []social.SocialPost `json:"posts" binding:"required"`
}

type SocialPostFilterQuery struct {
	Platform string `form:"platform"`
	Status   string `form:"status"`
}

func (q *SocialPostFilterQuery) ToFilter() (social.Filter, error) {
	var f social.Filter
	if q.Platform != "" {
		p, err := social.ParsePlatform(q.Platform)
		if err != nil {
			return social.Filter{}, err
		}
		f.Platform = p
	}
	if q.Status != "" {
		s, err := social.ParseStatus(q.Status)
		if err != nil {
			return social.Filter{}, err
		}
		f.Status = s
	}
	return f, nil
}
