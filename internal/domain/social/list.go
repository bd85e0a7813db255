package social

import "time"

// Filter narrows a post list; zero values match everything.
type Filter struct {
	Platform Platform
	Status   Status
}

func (f Filter) Match(p SocialPost) bool {
	if f.Platform != "" && p.Platform != f.Platform {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

func Apply(posts []SocialPost, f Filter) []SocialPost {
	out := make([]SocialPost, 0, len(posts))
	for _, p := range posts {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func Find(posts []SocialPost, id string) (SocialPost, int, bool) {
	for i, p := range posts {
		if p.ID == id {
			return p, i, true
		}
	}
	return SocialPost{}, -1, false
}

// Prepend returns a new list with p first.
func Prepend(posts []SocialPost, p SocialPost) []SocialPost {
	out := make([]SocialPost, 0, len(posts)+1)
	out = append(out, p)
	return append(out, posts...)
}

// Replace swaps the post with the same id, or reports false.
func Replace(posts []SocialPost, p SocialPost) ([]SocialPost, bool) {
	_, idx, ok := Find(posts, p.ID)
	if !ok {
		return posts, false
	}
	out := append([]SocialPost(nil), posts...)
	out[idx] = p
	return out, true
}

func Remove(posts []SocialPost, id string) ([]SocialPost, bool) {
	_, idx, ok := Find(posts, id)
	if !ok {
		return posts, false
	}
	out := make([]SocialPost, 0, len(posts)-1)
	out = append(out, posts[:idx]...)
	return append(out, posts[idx+1:]...), true
}

// DefaultPosts is the sample content a fresh store is seeded with.
func DefaultPosts(now time.Time) []SocialPost {
	scheduled := now.AddDate(0, 0, 7).Format(time.DateOnly)
	empty := ""
	note := func(s string) *string { return &s }

	return []SocialPost{
		{
			ID:        "sample-1",
			Platform:  PlatformTwitter,
			Content:   "AI-powered rug inspections in under 60 seconds. No more manual damage documentation or missed details. See how RugBoost is transforming the cleaning industry.",
			Hashtags:  []string{"RugCleaning", "AI", "BusinessAutomation"},
			Status:    StatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
			Notes:     note("Good for product launch announcement"),
		},
		{
			ID:       "sample-2",
			Platform: PlatformLinkedIn,
			Content: "The rug care industry is undergoing a digital transformation.\n\n" +
				"For decades, professionals have relied on paper forms and manual inspections. But that approach doesn't scale, and it introduces human error.\n\n" +
				"At RugBoost, we're building AI-powered tools that help cleaning businesses:\n" +
				"• Document damage with photo evidence\n" +
				"• Generate instant repair estimates\n" +
				"• Provide transparent client portals\n\n" +
				"The result? 94% faster estimates and happier customers.\n\n" +
				"Is your business ready for the shift?",
			Hashtags:     []string{"DigitalTransformation", "SmallBusiness", "RugCleaning", "AI"},
			Status:       StatusScheduled,
			ScheduledFor: &scheduled,
			CreatedAt:    now,
			UpdatedAt:    now,
			Notes:        note("Thought leadership piece for B2B audience"),
		},
		{
			ID:        "sample-3",
			Platform:  PlatformInstagram,
			Content:   "From inspection to estimate in seconds, not hours. Our AI sees what others miss. Swipe to see the difference.",
			MediaURL:  &empty,
			Hashtags:  []string{"RugCleaning", "CleaningBusiness", "BeforeAndAfter", "AITechnology", "SmallBusinessTools"},
			Status:    StatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
			Notes:     note("Needs carousel images showing app screenshots"),
		},
	}
}
