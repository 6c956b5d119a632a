package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*ResetTokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewResetTokenStore(rdb, "leadgen", 30*time.Minute), mr
}

func TestResetToken_SaveAndConsume(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", "alice@example.com"))
	assert.True(t, mr.Exists("leadgen:reset_token:tok-1"))

	email, err := store.Consume(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	// consumed: gone from redis, second use yields nothing
	assert.False(t, mr.Exists("leadgen:reset_token:tok-1"))
	email, err = store.Consume(ctx, "tok-1")
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestResetToken_UnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	email, err := store.Consume(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestResetToken_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", "alice@example.com"))

	ttl := mr.TTL("leadgen:reset_token:tok-1")
	assert.Equal(t, 30*time.Minute, ttl)

	mr.FastForward(31 * time.Minute)

	email, err := store.Consume(ctx, "tok-1")
	require.NoError(t, err)
	assert.Empty(t, email)
}
