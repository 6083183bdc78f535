package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behavior every Repository must share.
func runContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

		v, err := r.Get(ctx, "k1")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02}, v)
	})

	t.Run("missing key is nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(ctx, "absent")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(ctx, "k", []byte("old")))
		require.NoError(t, r.Set(ctx, "k", []byte("new")))

		v, err := r.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), v)
	})
}
