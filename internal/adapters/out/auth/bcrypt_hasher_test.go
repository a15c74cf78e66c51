package auth_test

import (
	"testing"

	"medmarket/internal/adapters/out/auth"
	"medmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	t.Run("hash and compare round trip", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-password")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-password", hash)
		require.NoError(t, hasher.Compare(hash, "s3cret-password"))
	})

	t.Run("wrong password fails comparison", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-password")
		require.NoError(t, err)

		require.Error(t, hasher.Compare(hash, "wrong-password"))
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := hasher.Hash("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("s3cret-password")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cret-password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
