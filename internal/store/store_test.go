package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmate/interview/internal/models"
)

// setupTestRedis creates a miniredis instance and a redis client for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func sampleSession(id string) *models.Session {
	return &models.Session{
		ID:                id,
		Role:              "backend engineer",
		CandidateName:     "Ada",
		Difficulty:        "medium",
		State:             models.StateCreated,
		CurrentMCQSlot:    -1,
		CurrentCodingSlot: -1,
		StartTime:         time.Now().UTC(),
	}
}

// both implementations must behave identically through the Store interface
func storesUnderTest(t *testing.T) map[string]Store {
	_, rdb := setupTestRedis(t)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb, time.Hour),
	}
}

func TestStoreCreateGetRoundTrip(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			session := sampleSession("s1")
			session.Slots = []*models.Slot{
				{
					Type:      models.SlotSpoken,
					CreatedAt: time.Now().UTC(),
					Spoken:    &models.SpokenSlot{Question: "Tell me about Go channels."},
				},
			}

			require.NoError(t, s.Create(ctx, session))

			got, err := s.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, session.ID, got.ID)
			assert.Equal(t, models.StateCreated, got.State)
			assert.Equal(t, -1, got.CurrentMCQSlot)
			require.Len(t, got.Slots, 1)
			assert.Equal(t, "Tell me about Go channels.", got.Slots[0].Spoken.Question)
		})
	}
}

func TestStoreCreateDuplicateFails(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Create(ctx, sampleSession("dup")))
			assert.Error(t, s.Create(ctx, sampleSession("dup")))
		})
	}
}

func TestStoreGetUnknownReturnsNotFound(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreUpdate(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			session := sampleSession("u1")
			require.NoError(t, s.Create(ctx, session))

			session.State = models.StateWarmup
			session.CurrentSlotIndex = 0
			require.NoError(t, s.Update(ctx, session))

			got, err := s.Get(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, models.StateWarmup, got.State)

			assert.ErrorIs(t, s.Update(ctx, sampleSession("ghost")), ErrNotFound)
		})
	}
}

func TestStoreDeleteAndList(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Create(ctx, sampleSession("a")))
			require.NoError(t, s.Create(ctx, sampleSession("b")))

			sessions, err := s.List(ctx)
			require.NoError(t, err)
			assert.Len(t, sessions, 2)

			require.NoError(t, s.Delete(ctx, "a"))
			assert.ErrorIs(t, s.Delete(ctx, "a"), ErrNotFound)

			sessions, err = s.List(ctx)
			require.NoError(t, err)
			require.Len(t, sessions, 1)
			assert.Equal(t, "b", sessions[0].ID)
		})
	}
}

func TestMemoryStoreReturnsClones(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	session := sampleSession("c1")
	require.NoError(t, s.Create(ctx, session))

	// mutating the caller's copy must not leak into the store
	session.State = models.StateCompleted

	got, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, models.StateCreated, got.State)

	// mutating a loaded copy must not leak either
	got.CandidateName = "someone else"
	again, err := s.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.CandidateName)
}

func TestRedisStoreKeyExpiry(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	s := NewRedisStore(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, sampleSession("ttl")))

	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, "ttl")
	assert.ErrorIs(t, err, ErrNotFound)
}
