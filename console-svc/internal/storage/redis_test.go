package storage_test

import (
	"context"
	"testing"
	"time"

	"overcooked-console/console-svc/internal/session"
	"overcooked-console/console-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T) (*storage.SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewSessionStore(client), mr
}

func TestSessionStore_SaveLoad(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()
	created := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	sess := session.Context{
		ID:        "abc",
		Token:     "tok",
		UserID:    7,
		Username:  "ann",
		Role:      session.RoleAdmin,
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}

	require.NoError(t, store.Save(ctx, sess, time.Hour))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)
	assert.Equal(t, time.Hour, mr.TTL("console:session:abc"))
}

func TestSessionStore_Expires(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.Context{ID: "abc"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "abc")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store, mr := newSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, session.Context{ID: "abc"}, time.Minute))
	require.NoError(t, store.Delete(ctx, "abc"))

	assert.False(t, mr.Exists("console:session:abc"))
	_, err := store.Load(ctx, "abc")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	store, mr := newSessionStore(t)
	require.NoError(t, mr.Set("console:session:abc", "{not json"))

	_, err := store.Load(context.Background(), "abc")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}
