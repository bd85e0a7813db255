package social

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPlatform = errors.New("invalid platform")
	ErrInvalidStatus   = errors.New("invalid post status")
	ErrEmptyContent    = errors.New("content is required")
	ErrContentTooLong  = errors.New("content exceeds platform character limit")
	ErrInvalidSchedule = errors.New("scheduledFor must be YYYY-MM-DD or RFC 3339")
	ErrPostNotFound    = errors.New("social post not found")
	ErrMissingID       = errors.New("post id is required")
	ErrDuplicateID     = errors.New("duplicate post id")
)

type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
)

var Platforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformInstagram, PlatformFacebook, PlatformTikTok}

var platformLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformLinkedIn:  3000,
	PlatformInstagram: 2200,
	PlatformFacebook:  63206,
	PlatformTikTok:    2200,
}

var platformLabels = map[Platform]string{
	PlatformTwitter:   "Twitter / X",
	PlatformLinkedIn:  "LinkedIn",
	PlatformInstagram: "Instagram",
	PlatformFacebook:  "Facebook",
	PlatformTikTok:    "TikTok",
}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := platformLimits[p]; !ok {
		return "", ErrInvalidPlatform
	}
	return p, nil
}

// Limit is the maximum content length in characters.
func (p Platform) Limit() int {
	return platformLimits[p]
}

func (p Platform) Label() string {
	return platformLabels[p]
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusDraft, StatusScheduled, StatusPublished:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}
