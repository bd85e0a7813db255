package commands

import (
	"context"
	"log/slog"

	"rugboost-api/internal/domain/registration"
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/pkg/clock"
	"rugboost-api/internal/pkg/errs"
	"rugboost-api/internal/pkg/password"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRegistrationFailed = errs.New("Failed to complete registration")

//go:generate mockgen -source=registration.go -destination=../../../tests/mock/commands/registration_mock.go -package=commandsmock

type RegistrationCommands interface {
	Complete(ctx context.Context, req registration.Request) (*registration.Result, error)
}

type registrationCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher password.Hasher
	clock  clock.Clock
}

func NewRegistrationCommands(uow shared.UnitOfWork, hasher password.Hasher, clk clock.Clock) RegistrationCommands {
	return &registrationCommandsImpl{uow: uow, hasher: hasher, clock: clk}
}

// Complete sets the invited client's password and links their account. The
// whole sequence commits or rolls back together.
func (r *registrationCommandsImpl) Complete(ctx context.Context, req registration.Request) (*registration.Result, error) {
	v, err := req.Validate()
	if err != nil {
		return nil, err
	}

	logger := slog.With(slog.String("registration_id", uuid.NewString()[:8]))
	logger.InfoContext(ctx, "registration request", "email", v.Email.Masked())

	hash, err := r.hasher.Hash(v.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	var userID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invites().FindByToken(ctx, v.AccessToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return registration.ErrInvalidAccessToken
			}
			return err
		}

		now := r.clock.Now()
		authUserID, err := inv.Authorize(v.Email, now)
		if err != nil {
			return err
		}

		if err := tx.AuthUsers().SetPassword(ctx, authUserID, hash); err != nil {
			return err
		}

		clientID, err := ensureClientAccount(ctx, tx, authUserID, v.Email.Value(), inv.ClientDisplayName())
		if err != nil {
			return err
		}
		if err := tx.Invites().LinkClient(ctx, v.AccessToken, clientID); err != nil {
			return err
		}

		// Self-registration only ever grants the client role.
		if err := tx.Roles().Ensure(ctx, authUserID, user.RoleClient); err != nil {
			return err
		}
		if err := tx.Invites().MarkPasswordSet(ctx, v.AccessToken, now); err != nil {
			return err
		}

		userID = authUserID
		return nil
	})
	if err != nil {
		if isRegistrationRejection(err) {
			logger.WarnContext(ctx, "registration rejected", "reason", err.Error())
			return nil, err
		}
		logger.ErrorContext(ctx, "registration failed", "error", err.Error())
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	logger.InfoContext(ctx, "registration completed", "user_id", user.Mask(userID.String(), 8))
	return &registration.Result{UserID: userID, IsNewUser: false}, nil
}

func ensureClientAccount(ctx context.Context, tx shared.Tx, userID uuid.UUID, email, fullName string) (uuid.UUID, error) {
	id, err := tx.ClientAccounts().FindIDByUserID(ctx, userID)
	if err == nil {
		return id, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	id, err = tx.ClientAccounts().Create(ctx, userID, email, fullName)
	if err == nil {
		return id, nil
	}
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return tx.ClientAccounts().FindIDByUserID(ctx, userID)
	}
	return uuid.Nil, err
}

func isRegistrationRejection(err error) bool {
	return errs.Is(err, registration.ErrInvalidAccessToken) ||
		errs.Is(err, registration.ErrLegacyInvite) ||
		errs.Is(err, registration.ErrEmailMismatch)
}
