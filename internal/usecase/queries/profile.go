package queries

import (
	"context"

	"rugboost-api/internal/domain/profile"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=profile.go -destination=../../../tests/mock/queries/profile_mock.go -package=queriesmock

type ProfileQueries interface {
	// Get returns an empty profile when the user has not saved one yet.
	Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error)
}

type profileQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewProfileQueries(uow shared.UnitOfWork) ProfileQueries {
	return &profileQueriesImpl{uow: uow}
}

func (q *profileQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	var out *profile.Profile
	err := q.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Profiles().FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			empty := profile.Empty(userID)
			return &empty, nil
		}
		return nil, err
	}
	return out, nil
}
