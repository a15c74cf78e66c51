package auth_test

import (
	"testing"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("creates buyer actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := auth.NewActor(auth.RoleBuyer, id)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, auth.RoleBuyer, actor.Role())
		assert.True(t, actor.ID().IsEqual(id))
		assert.True(t, actor.IsBuyer())
		assert.False(t, actor.IsSeller())
	})

	t.Run("creates seller actor", func(t *testing.T) {
		actor, err := auth.NewActor(auth.RoleSeller, kernel.NewUUID())

		require.NoError(t, err)
		assert.True(t, actor.IsSeller())
		assert.False(t, actor.IsBuyer())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := auth.NewActor(auth.RoleUnknown, kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero value ID", func(t *testing.T) {
		var id kernel.UUID

		_, err := auth.NewActor(auth.RoleBuyer, id)

		require.Error(t, err)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value actor is invalid", func(t *testing.T) {
		var actor auth.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, auth.ErrActorIsNotConstructed, err)
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "buyer", auth.RoleBuyer.String())
	assert.Equal(t, "seller", auth.RoleSeller.String())
	assert.Equal(t, "unknown", auth.RoleUnknown.String())
	assert.Equal(t, "unknown", auth.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		role, err := auth.RoleFromString("buyer")
		require.NoError(t, err)
		assert.Equal(t, auth.RoleBuyer, role)

		role, err = auth.RoleFromString("seller")
		require.NoError(t, err)
		assert.Equal(t, auth.RoleSeller, role)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, s := range []string{"", "admin", "Buyer", "SELLER"} {
			_, err := auth.RoleFromString(s)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
