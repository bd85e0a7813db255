package queries

import (
	"context"

	"rugboost-api/internal/domain/social"
	"rugboost-api/internal/usecase/shared"
)

//go:generate mockgen -source=social.go -destination=../../../tests/mock/queries/social_mock.go -package=queriesmock

type SocialQueries interface {
	List(ctx context.Context, filter social.Filter) ([]social.SocialPost, error)
}

type socialQueriesImpl struct {
	store shared.PostStore
}

func NewSocialQueries(store shared.PostStore) SocialQueries {
	return &socialQueriesImpl{store: store}
}

func (q *socialQueriesImpl) List(ctx context.Context, filter social.Filter) ([]social.SocialPost, error) {
	posts, err := q.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return social.Apply(posts, filter), nil
}
