package authstate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(state string, ttl time.Duration) Session {
	now := time.Now()
	return Session{
		State:        state,
		PKCEVerifier: "verifier-" + state,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

func TestMemoryStoreConsumeOnce(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(store.Close)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("abc", TTL)))

	got, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "verifier-abc", got.PKCEVerifier)

	// a second redemption of the same state must fail
	again, err := store.Consume(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestMemoryStoreUnknownState(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(store.Close)

	got, err := store.Consume(context.Background(), "never-created")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiredState(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(store.Close)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("short", 10*time.Millisecond)))
	time.Sleep(30 * time.Millisecond)

	got, err := store.Consume(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreCreateValidation(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(store.Close)
	ctx := context.Background()

	assert.Error(t, store.Create(ctx, Session{ExpiresAt: time.Now().Add(TTL)}))

	expired := newSession("late", TTL)
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Create(ctx, expired))
}

func TestMemoryStoreConcurrentLogins(t *testing.T) {
	store := NewMemoryStore()
	t.Cleanup(store.Close)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newSession("one", TTL)))
	require.NoError(t, store.Create(ctx, newSession("two", TTL)))

	got, err := store.Consume(ctx, "one")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "verifier-one", got.PKCEVerifier)

	// consuming one attempt must not disturb the other
	got, err = store.Consume(ctx, "two")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "verifier-two", got.PKCEVerifier)
}

func TestGenerateStateUnique(t *testing.T) {
	a, err := GenerateState()
	require.NoError(t, err)
	b, err := GenerateState()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
