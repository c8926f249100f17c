package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestDraftStore_MaintenanceDraft(t *testing.T) {
	client := setupTestRedis(t)
	store := NewDraftStore(client, time.Minute)
	ctx := context.Background()

	draft := &MaintenanceDraft{
		Description: "Replaced the hinge, waiting for paint to dry",
		Images:      []string{"https://cdn.example.com/hinge.jpg"},
	}

	require.NoError(t, store.SaveMaintenanceDraft(ctx, 20, 7, draft))

	loaded, err := store.GetMaintenanceDraft(ctx, 20, 7)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft.Description, loaded.Description)
	assert.Equal(t, draft.Images, loaded.Images)

	t.Run("keys are scoped per user and ticket", func(t *testing.T) {
		otherUser, err := store.GetMaintenanceDraft(ctx, 21, 7)
		require.NoError(t, err)
		assert.Nil(t, otherUser)

		otherTicket, err := store.GetMaintenanceDraft(ctx, 20, 8)
		require.NoError(t, err)
		assert.Nil(t, otherTicket)
	})

	t.Run("save resets expiry", func(t *testing.T) {
		require.NoError(t, store.SaveMaintenanceDraft(ctx, 20, 7, draft))

		ttl, err := client.TTL(ctx, maintenanceDraftKey(20, 7)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, 50*time.Second)
	})

	t.Run("clear removes the draft", func(t *testing.T) {
		require.NoError(t, store.ClearMaintenanceDraft(ctx, 20, 7))

		loaded, err := store.GetMaintenanceDraft(ctx, 20, 7)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}

func TestDraftStore_ReportDraft(t *testing.T) {
	client := setupTestRedis(t)
	store := NewDraftStore(client, time.Minute)
	ctx := context.Background()

	draft := &ReportDraft{
		Title:       "Broken window",
		Description: "The window next to the fire exit does not close",
		Location:    "Building A, floor 2",
		Priority:    "high",
		Images:      []string{"https://cdn.example.com/window.jpg"},
	}

	require.NoError(t, store.SaveReportDraft(ctx, 10, draft))

	loaded, err := store.GetReportDraft(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, draft, loaded)

	t.Run("missing draft returns nil without error", func(t *testing.T) {
		loaded, err := store.GetReportDraft(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("save overwrites the previous draft", func(t *testing.T) {
		updated := &ReportDraft{Title: "Broken window, now with a crack"}
		require.NoError(t, store.SaveReportDraft(ctx, 10, updated))

		loaded, err := store.GetReportDraft(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, "Broken window, now with a crack", loaded.Title)
		assert.Empty(t, loaded.Location)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, store.ClearReportDraft(ctx, 10))
		require.NoError(t, store.ClearReportDraft(ctx, 10))

		loaded, err := store.GetReportDraft(ctx, 10)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}

func TestNewDraftStore_DefaultTTL(t *testing.T) {
	store := NewDraftStore(nil, 0)
	assert.Equal(t, DefaultDraftTTL, store.ttl)

	store = NewDraftStore(nil, -time.Hour)
	assert.Equal(t, DefaultDraftTTL, store.ttl)
}
