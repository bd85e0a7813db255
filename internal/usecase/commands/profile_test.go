//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rugboost-api/internal/domain/profile"
	"rugboost-api/internal/pkg/ptr"
	"rugboost-api/internal/usecase/commands"
	"rugboost-api/tests/common/fakeuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCommands(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first update creates the profile", func(t *testing.T) {
		uow := fakeuow.New()
		saved, err := commands.NewProfileCommands(uow).Update(ctx, userID, profile.Edit{
			FullName:     " Ana Rivera ",
			BusinessName: "Heritage Rug Works",
		})
		require.NoError(t, err)
		assert.Equal(t, userID, saved.UserID)
		assert.Equal(t, "Ana Rivera", *saved.FullName)
		assert.Nil(t, saved.BusinessPhone)
		assert.Equal(t, *saved, uow.Profiles[userID])
	})

	t.Run("blank fields clear and the logo survives", func(t *testing.T) {
		uow := fakeuow.New()
		uow.Profiles[userID] = profile.Profile{
			UserID:       userID,
			BusinessName: ptr.Of("Old Name"),
			LogoURL:      ptr.Of("https://cdn.example.com/logo.png"),
		}

		saved, err := commands.NewProfileCommands(uow).Update(ctx, userID, profile.Edit{FullName: "Ana"})
		require.NoError(t, err)
		assert.Nil(t, saved.BusinessName)
		require.NotNil(t, saved.LogoURL)
		assert.Equal(t, "https://cdn.example.com/logo.png", *saved.LogoURL)
	})

	t.Run("invalid edits leave the stored profile alone", func(t *testing.T) {
		uow := fakeuow.New()
		uow.Profiles[userID] = profile.Profile{UserID: userID, BusinessName: ptr.Of("Keep")}
		cmds := commands.NewProfileCommands(uow)

		_, err := cmds.Update(ctx, userID, profile.Edit{BusinessPhone: strings.Repeat("1", 31)})
		var fe *profile.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "business phone", fe.Field)

		_, err = cmds.Update(ctx, userID, profile.Edit{BusinessEmail: "nope"})
		assert.ErrorIs(t, err, profile.ErrInvalidBusinessEmail)
		assert.Equal(t, "Keep", *uow.Profiles[userID].BusinessName)
	})

	t.Run("remove logo", func(t *testing.T) {
		uow := fakeuow.New()
		uow.Profiles[userID] = profile.Profile{UserID: userID, LogoURL: ptr.Of("x")}

		require.NoError(t, commands.NewProfileCommands(uow).RemoveLogo(ctx, userID))
		assert.Nil(t, uow.Profiles[userID].LogoURL)
	})

	t.Run("remove logo failure", func(t *testing.T) {
		uow := fakeuow.New()
		uow.FailOn, uow.Err = "Profiles.ClearLogo", errors.New("timeout")

		assert.ErrorIs(t, commands.NewProfileCommands(uow).RemoveLogo(ctx, userID), uow.Err)
	})
}
