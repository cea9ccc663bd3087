package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	s := Session{
		State:        StateAwaitingTargetIdentity,
		UserIdentity: "我是一個大學生",
	}

	require.NoError(t, store.Put(ctx, "user-1", s))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestMemoryStoreAbsentIsZeroSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, Session{}, got)
	assert.Equal(t, StateNone, got.State)

	p, err := store.GetLastPrompt(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStoreDeleteRemovesBothRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	require.NoError(t, store.Put(ctx, "user-1", Session{State: StateComplete}))
	require.NoError(t, store.PutLastPrompt(ctx, "user-1", LastPrompt{Kind: PromptGenerate}))

	require.NoError(t, store.Delete(ctx, "user-1"))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, Session{}, got)

	p, err := store.GetLastPrompt(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStoreIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	require.NoError(t, store.Put(ctx, "user-1", Session{UserIdentity: "甲"}))
	require.NoError(t, store.Put(ctx, "user-2", Session{UserIdentity: "乙"}))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "甲", got.UserIdentity)

	require.NoError(t, store.Delete(ctx, "user-1"))

	got, err = store.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, "乙", got.UserIdentity)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(40 * time.Millisecond)

	require.NoError(t, store.Put(ctx, "user-1", Session{State: StateComplete}))
	require.NoError(t, store.PutLastPrompt(ctx, "user-1", LastPrompt{Kind: PromptGenerate}))

	time.Sleep(80 * time.Millisecond)

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, Session{}, got)

	p, err := store.GetLastPrompt(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStoreWriteResetsTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(100 * time.Millisecond)

	require.NoError(t, store.Put(ctx, "user-1", Session{State: StateAwaitingContext}))

	time.Sleep(60 * time.Millisecond)
	require.NoError(t, store.Put(ctx, "user-1", Session{State: StateAwaitingContext}))
	time.Sleep(60 * time.Millisecond)

	// 120ms after the first write, but only 60ms after the second
	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingContext, got.State)
}
