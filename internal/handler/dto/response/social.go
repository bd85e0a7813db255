package response

import "rugboost-api/internal/domain/social"

type SocialPostResponse struct {
	social.SocialPost
	PlatformLabel string `json:"platformLabel"`
	CharLimit     int    `json:"charLimit"`
	Remaining     int    `json:"remaining"`
}

func FromSocialPost(p *social.SocialPost) *SocialPostResponse {
	post := *p
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}
	return &SocialPostResponse{
		SocialPost:    post,
		PlatformLabel: p.Platform.Label(),
		CharLimit:     p.Platform.Limit(),
		Remaining:     p.Remaining(),
	}
}

func FromSocialPosts(posts []social.SocialPost) []*SocialPostResponse {
	res := make([]*SocialPostResponse, len(posts))
	for i := range posts {
		res[i] = FromSocialPost(&posts[i])
	}
	return res
}
