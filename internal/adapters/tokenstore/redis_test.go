package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
	"github.com/AbdelhakNemri/sports-arena-client/internal/testutil"
)

func TestRedisStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewRedisStore(client, "test:arena_token")
	ctx := context.Background()
	t.Cleanup(func() { _ = store.Remove(ctx) })

	token := testutil.ValidToken(t, nil)
	require.NoError(t, store.Save(ctx, token))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.True(t, store.Has(ctx))
}

func TestRedisStore_GetMissing(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewRedisStore(client, "test:arena_token_missing")
	ctx := context.Background()

	_, err := store.Get(ctx)
	assert.Equal(t, ports.ErrNoToken, err)
	assert.False(t, store.Has(ctx))
}

func TestRedisStore_RejectsExpiredToken(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewRedisStore(client, "test:arena_token_expired")
	ctx := context.Background()

	expired := testutil.SignedToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	err := store.Save(ctx, expired)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token is expired")
}

func TestRedisStore_Remove(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewRedisStore(client, "test:arena_token_remove")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testutil.ValidToken(t, nil)))
	require.NoError(t, store.Remove(ctx))

	_, err := store.Get(ctx)
	assert.Equal(t, ports.ErrNoToken, err)
}
