package socialstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"rugboost-api/internal/domain/social"
	"rugboost-api/internal/infra/kvstore"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/errs"
)

// Key is where the whole post list lives.
const Key = "rugboost_social_posts"

// KVPostStore keeps every social post in one JSON array under Key.
type KVPostStore struct {
	kv    kvstore.Store
	clock clock.Clock
}

func NewKVPostStore(kv kvstore.Store, clk clock.Clock) *KVPostStore {
	return &KVPostStore{kv: kv, clock: clk}
}

// Get returns the stored list. A missing key is seeded with the default
// posts; an unreadable value yields the defaults without overwriting it.
func (s *KVPostStore) Get(ctx context.Context) ([]social.SocialPost, error) {
	raw, err := s.kv.Get(ctx, Key)
	if errors.Is(err, kvstore.ErrNotFound) {
		defaults := social.DefaultPosts(s.clock.Now().UTC())
		if err := s.Save(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load social posts")
	}

	var posts []social.SocialPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		slog.Warn("stored social posts are unreadable, serving defaults", "error", err.Error())
		return social.DefaultPosts(s.clock.Now().UTC()), nil
	}
	if posts == nil {
		posts = []social.SocialPost{}
	}
	return posts, nil
}

func (s *KVPostStore) Save(ctx context.Context, posts []social.SocialPost) error {
	if posts == nil {
		posts = []social.SocialPost{}
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return errs.Wrap(err, "failed to encode social posts")
	}
	if err := s.kv.Put(ctx, Key, raw); err != nil {
		return errs.Wrap(err, "failed to save social posts")
	}
	return nil
}
