//go:build unit

// Package fakeuow is an in-memory UnitOfWork. Within rolls every table back
// when fn returns an error.
package fakeuow

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"rugboost-api/internal/domain/profile"
	"rugboost-api/internal/domain/registration"
	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/infra"
	"rugboost-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	Invites        map[string]registration.Invite
	Passwords      map[uuid.UUID]string
	ClientAccounts map[uuid.UUID]uuid.UUID
	Roles          map[uuid.UUID][]user.Role
	Profiles       map[uuid.UUID]profile.Profile
}

func (s state) clone() state {
	roles := make(map[uuid.UUID][]user.Role, len(s.Roles))
	for k, v := range s.Roles {
		roles[k] = slices.Clone(v)
	}
	return state{
		Invites:        maps.Clone(s.Invites),
		Passwords:      maps.Clone(s.Passwords),
		ClientAccounts: maps.Clone(s.ClientAccounts),
		Roles:          roles,
		Profiles:       maps.Clone(s.Profiles),
	}
}

type UoW struct {
	mu sync.Mutex
	state
	// FailOn makes the named repository call return Err, e.g. "Roles.Ensure".
	FailOn string
	Err    error
}

var _ shared.UnitOfWork = (*UoW)(nil)

func New() *UoW {
	return &UoW{state: state{
		Invites:        map[string]registration.Invite{},
		Passwords:      map[uuid.UUID]string{},
		ClientAccounts: map[uuid.UUID]uuid.UUID{},
		Roles:          map[uuid.UUID][]user.Role{},
		Profiles:       map[uuid.UUID]profile.Profile{},
	}}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	snapshot := u.state.clone()
	if err := fn(ctx, &tx{u: u}); err != nil {
		u.state = snapshot
		return err
	}
	return nil
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, &tx{u: u})
}

func (u *UoW) fail(op string) error {
	if u.FailOn == op {
		return u.Err
	}
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

type tx struct {
	u *UoW
}

func (t *tx) Invites() shared.InviteRepository               { return invites{t.u} }
func (t *tx) AuthUsers() shared.AuthUserRepository           { return authUsers{t.u} }
func (t *tx) ClientAccounts() shared.ClientAccountRepository { return clientAccounts{t.u} }
func (t *tx) Roles() shared.RoleRepository                   { return roles{t.u} }
func (t *tx) Profiles() shared.ProfileRepository             { return profiles{t.u} }

type invites struct{ u *UoW }

func (r invites) FindByToken(_ context.Context, token string) (*registration.Invite, error) {
	if err := r.u.fail("Invites.FindByToken"); err != nil {
		return nil, err
	}
	inv, ok := r.u.Invites[token]
	if !ok {
		return nil, notFound("invite not found")
	}
	return &inv, nil
}

func (r invites) LinkClient(_ context.Context, token string, clientID uuid.UUID) error {
	if err := r.u.fail("Invites.LinkClient"); err != nil {
		return err
	}
	inv := r.u.Invites[token]
	if inv.ClientID == nil {
		inv.ClientID = &clientID
	}
	r.u.Invites[token] = inv
	return nil
}

func (r invites) MarkPasswordSet(_ context.Context, token string, at time.Time) error {
	if err := r.u.fail("Invites.MarkPasswordSet"); err != nil {
		return err
	}
	inv := r.u.Invites[token]
	inv.PasswordSetAt = &at
	r.u.Invites[token] = inv
	return nil
}

type authUsers struct{ u *UoW }

func (r authUsers) SetPassword(_ context.Context, userID uuid.UUID, hash string) error {
	if err := r.u.fail("AuthUsers.SetPassword"); err != nil {
		return err
	}
	r.u.Passwords[userID] = hash
	return nil
}

type clientAccounts struct{ u *UoW }

func (r clientAccounts) FindIDByUserID(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	id, ok := r.u.ClientAccounts[userID]
	if !ok {
		return uuid.Nil, notFound("client account not found")
	}
	return id, nil
}

func (r clientAccounts) Create(_ context.Context, userID uuid.UUID, _, _ string) (uuid.UUID, error) {
	if err := r.u.fail("ClientAccounts.Create"); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	r.u.ClientAccounts[userID] = id
	return id, nil
}

type roles struct{ u *UoW }

func (r roles) Ensure(_ context.Context, userID uuid.UUID, role user.Role) error {
	if err := r.u.fail("Roles.Ensure"); err != nil {
		return err
	}
	if !slices.Contains(r.u.Roles[userID], role) {
		r.u.Roles[userID] = append(r.u.Roles[userID], role)
	}
	return nil
}

type profiles struct{ u *UoW }

func (r profiles) FindByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if err := r.u.fail("Profiles.FindByUserID"); err != nil {
		return nil, err
	}
	p, ok := r.u.Profiles[userID]
	if !ok {
		return nil, notFound("profile not found")
	}
	return &p, nil
}

func (r profiles) Upsert(_ context.Context, p profile.Profile) error {
	if err := r.u.fail("Profiles.Upsert"); err != nil {
		return err
	}
	r.u.Profiles[p.UserID] = p
	return nil
}

func (r profiles) ClearLogo(_ context.Context, userID uuid.UUID) error {
	if err := r.u.fail("Profiles.ClearLogo"); err != nil {
		return err
	}
	if p, ok := r.u.Profiles[userID]; ok {
		r.u.Profiles[userID] = p.ClearLogo()
	}
	return nil
}
