package social

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// SocialPost is persisted as an element of one JSON array, so the json tags
// define the stored format.
type SocialPost struct {
	ID           string    `json:"id"`
	Platform     Platform  `json:"platform"`
	Content      string    `json:"content"`
	MediaURL     *string   `json:"mediaUrl,omitempty"`
	Hashtags     []string  `json:"hashtags"`
	ScheduledFor *string   `json:"scheduledFor,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Notes        *string   `json:"notes,omitempty"`
}

// Draft is the editable part of a post.
type Draft struct {
	Platform     string
	Content      string
	MediaURL     *string
	Hashtags     []string
	ScheduledFor *string
	Status       string
	Notes        *string
}

func NewPost(id string, d Draft, now time.Time) (SocialPost, error) {
	p := SocialPost{ID: id, CreatedAt: now}
	if err := p.apply(d, now); err != nil {
		return SocialPost{}, err
	}
	return p, nil
}

// Revise replaces the editable fields, keeping id and createdAt.
func (p SocialPost) Revise(d Draft, now time.Time) (SocialPost, error) {
	if err := p.apply(d, now); err != nil {
		return SocialPost{}, err
	}
	return p, nil
}

func (p *SocialPost) apply(d Draft, now time.Time) error {
	platform, err := ParsePlatform(d.Platform)
	if err != nil {
		return err
	}
	status := StatusDraft
	if strings.TrimSpace(d.Status) != "" {
		if status, err = ParseStatus(d.Status); err != nil {
			return err
		}
	}
	content := strings.TrimSpace(d.Content)
	if err := validateContent(platform, content); err != nil {
		return err
	}
	schedule, err := NormalizeSchedule(d.ScheduledFor)
	if err != nil {
		return err
	}

	p.Platform = platform
	p.Content = content
	p.MediaURL = blankToNil(d.MediaURL)
	p.Hashtags = NormalizeHashtags(d.Hashtags)
	p.ScheduledFor = schedule
	p.Status = status
	p.Notes = blankToNil(d.Notes)
	p.UpdatedAt = now
	return nil
}

// Validate checks a post that arrived whole, e.g. through a bulk replace.
func (p SocialPost) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingID
	}
	if _, err := ParsePlatform(string(p.Platform)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(p.Status)); err != nil {
		return err
	}
	if err := validateContent(p.Platform, strings.TrimSpace(p.Content)); err != nil {
		return err
	}
	_, err := NormalizeSchedule(p.ScheduledFor)
	return err
}

// Duplicate copies the post as a new draft.
func (p SocialPost) Duplicate(id string, now time.Time) SocialPost {
	note := "Duplicated post"
	if p.Notes != nil && *p.Notes != "" {
		note = "Duplicated from: " + *p.Notes
	}
	dup := p
	dup.ID = id
	dup.Status = StatusDraft
	dup.Hashtags = append([]string{}, p.Hashtags...)
	dup.Notes = &note
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return dup
}

// Remaining is how many characters are left before the platform limit.
func (p SocialPost) Remaining() int {
	return p.Platform.Limit() - utf8.RuneCountInString(p.Content)
}

func validateContent(platform Platform, content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	if n := utf8.RuneCountInString(content); n > platform.Limit() {
		return fmt.Errorf("%w: %d of %d for %s", ErrContentTooLong, n, platform.Limit(), platform.Label())
	}
	return nil
}

// NormalizeSchedule accepts a calendar date or an RFC 3339 timestamp. Blank
// values clear the schedule.
func NormalizeSchedule(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if _, err := time.Parse(time.DateOnly, v); err == nil {
		return &v, nil
	}
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return &v, nil
	}
	return nil, ErrInvalidSchedule
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
