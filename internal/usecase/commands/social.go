package commands

import (
	"context"
	"sync"

	"rugboost-api/internal/domain/social"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=social.go -destination=../../../tests/mock/commands/social_mock.go -package=commandsmock

type SocialCommands interface {
	Create(ctx context.Context, d social.Draft) (*social.SocialPost, error)
	Update(ctx context.Context, id string, d social.Draft) (*social.SocialPost, error)
	Duplicate(ctx context.Context, id string) (*social.SocialPost, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, posts []social.SocialPost) error
}

// socialCommandsImpl serializes read-modify-write cycles within the process.
// Writers in other processes still overwrite each other (last write wins).
type socialCommandsImpl struct {
	mu    sync.Mutex
	store shared.PostStore
	clock clock.Clock
	newID func() string
}

func NewSocialCommands(store shared.PostStore, clk clock.Clock) SocialCommands {
	return &socialCommandsImpl{store: store, clock: clk, newID: uuid.NewString}
}

func (s *socialCommandsImpl) Create(ctx context.Context, d social.Draft) (*social.SocialPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := social.NewPost(s.newID(), d, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	posts, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, social.Prepend(posts, post)); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *socialCommandsImpl) Update(ctx context.Context, id string, d social.Draft) (*social.SocialPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	current, _, ok := social.Find(posts, id)
	if !ok {
		return nil, social.ErrPostNotFound
	}

	revised, err := current.Revise(d, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}
	updated, _ := social.Replace(posts, revised)
	if err := s.store.Save(ctx, updated); err != nil {
		return nil, err
	}
	return &revised, nil
}

func (s *socialCommandsImpl) Duplicate(ctx context.Context, id string) (*social.SocialPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	src, _, ok := social.Find(posts, id)
	if !ok {
		return nil, social.ErrPostNotFound
	}

	dup := src.Duplicate(s.newID(), s.clock.Now().UTC())
	if err := s.store.Save(ctx, social.Prepend(posts, dup)); err != nil {
		return nil, err
	}
	return &dup, nil
}

func (s *socialCommandsImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.Get(ctx)
	if err != nil {
		return err
	}
	remaining, ok := social.Remove(posts, id)
	if !ok {
		return social.ErrPostNotFound
	}
	return s.store.Save(ctx, remaining)
}

// ReplaceAll validates every post before overwriting the stored list.
func (s *socialCommandsImpl) ReplaceAll(ctx context.Context, posts []social.SocialPost) error {
	seen := make(map[string]struct{}, len(posts))
	for i := range posts {
		if err := posts[i].Validate(); err != nil {
			return errs.Wrapf(err, "post %d", i)
		}
		if _, dup := seen[posts[i].ID]; dup {
			return errs.Wrapf(social.ErrDuplicateID, "post %d (%s)", i, posts[i].ID)
		}
		seen[posts[i].ID] = struct{}{}
		posts[i].Hashtags = social.NormalizeHashtags(posts[i].Hashtags)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Save(ctx, posts)
}
