package commands

import (
	"context"

	"rugboost-api/internal/domain/profile"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=profile.go -destination=../../../tests/mock/commands/profile_mock.go -package=commandsmock

type ProfileCommands interface {
	Update(ctx context.Context, userID uuid.UUID, edit profile.Edit) (*profile.Profile, error)
	RemoveLogo(ctx context.Context, userID uuid.UUID) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

func (p *profileCommandsImpl) Update(ctx context.Context, userID uuid.UUID, edit profile.Edit) (*profile.Profile, error) {
	var saved profile.Profile
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Profiles().FindByUserID(ctx, userID)
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			empty := profile.Empty(userID)
			current = &empty
		case err != nil:
			return err
		}

		next, err := current.Apply(edit)
		if err != nil {
			return err
		}
		if err := tx.Profiles().Upsert(ctx, next); err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (p *profileCommandsImpl) RemoveLogo(ctx context.Context, userID uuid.UUID) error {
	return p.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Profiles().ClearLogo(ctx, userID)
	})
}
