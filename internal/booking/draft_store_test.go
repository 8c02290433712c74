package booking

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisDraftStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisDraftStore(client, time.Hour)
	ctx := context.Background()

	req := NewSpeakingRequest()
	req.OrganizationName = "Riverside Recovery Center"
	req.ToggleTopic("Trauma-Informed Care & Healing")
	req.EventOptions.Append()
	require.NoError(t, req.EventOptions.SetDate(1, "2026-09-12"))

	require.NoError(t, store.Save(ctx, "sess-1", NewSpeakingPayload(req)))

	got, err := store.Load(ctx, "sess-1", KindSpeaking)
	require.NoError(t, err)
	require.Equal(t, KindSpeaking, got.Kind)
	require.NotNil(t, got.Speaking)
	require.Equal(t, "Riverside Recovery Center", got.Speaking.OrganizationName)
	require.Equal(t, []string{"Trauma-Informed Care & Healing"}, got.Speaking.TopicsOfInterest)
	require.Equal(t, 2, got.Speaking.EventOptions.Len())
	require.Equal(t, "2026-09-12", got.Speaking.EventOptions.All()[1].Date)
}

func TestRedisDraftStoreMissing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisDraftStore(client, time.Hour)

	_, err := store.Load(context.Background(), "nope", KindTherapy)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisDraftStoreTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisDraftStore(client, time.Minute)
	ctx := context.Background()

	req := NewTherapyRequest()
	req.Name = "Sam"
	require.NoError(t, store.Save(ctx, "sess-ttl", NewTherapyPayload(req)))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "sess-ttl", KindTherapy)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestRedisDraftStoreDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisDraftStore(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-2", NewTherapyPayload(NewTherapyRequest())))
	require.NoError(t, store.Delete(ctx, "sess-2", KindTherapy))
	_, err := store.Load(ctx, "sess-2", KindTherapy)
	require.ErrorIs(t, err, ErrDraftNotFound)

	// Deleting an absent draft is fine.
	require.NoError(t, store.Delete(ctx, "sess-2", KindTherapy))
}

func TestMemoryDraftStore(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()

	req := NewTherapyRequest()
	req.Name = "Alex"
	req.Email = "alex@example.com"
	require.NoError(t, store.Save(ctx, "sess-3", NewTherapyPayload(req)))

	got, err := store.Load(ctx, "sess-3", KindTherapy)
	require.NoError(t, err)
	require.Equal(t, "Alex", got.Therapy.Name)

	// Therapy and speaking drafts for a session are independent.
	_, err = store.Load(ctx, "sess-3", KindSpeaking)
	require.ErrorIs(t, err, ErrDraftNotFound)

	require.NoError(t, store.Delete(ctx, "sess-3", KindTherapy))
	_, err = store.Load(ctx, "sess-3", KindTherapy)
	require.ErrorIs(t, err, ErrDraftNotFound)
}
