package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAsideFetchesOnMissThenHits(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchCalls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetchCalls++
			*dest = payload{Name: "dashboard", Count: 3}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "stats:1", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, 3, first.Count)

	// Second read is served from the cache.
	var second payload
	require.NoError(t, Aside(ctx, "stats:1", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetchCalls)
	assert.Equal(t, first, second)
}

func TestAsideWithoutClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	fetchCalls := 0
	var out payload
	for i := 0; i < 2; i++ {
		require.NoError(t, Aside(ctx, "stats:2", &out, time.Minute, func() error {
			fetchCalls++
			out = payload{Name: "fresh", Count: fetchCalls}
			return nil
		}))
	}
	assert.Equal(t, 2, fetchCalls, "nil client degrades to direct fetches")
	assert.Equal(t, 2, out.Count)
}

func TestInvalidateDashboardForcesRefetch(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	userID := uint(9)
	key := DashboardKey(userID)

	fetchCalls := 0
	load := func(dest *payload) error {
		fetchCalls++
		*dest = payload{Name: "dash", Count: fetchCalls}
		return nil
	}

	var stats payload
	require.NoError(t, Aside(ctx, key, &stats, DashboardTTL, func() error { return load(&stats) }))
	require.NoError(t, Aside(ctx, key, &stats, DashboardTTL, func() error { return load(&stats) }))
	assert.Equal(t, 1, fetchCalls)

	InvalidateDashboard(ctx, userID)

	require.NoError(t, Aside(ctx, key, &stats, DashboardTTL, func() error { return load(&stats) }))
	assert.Equal(t, 2, fetchCalls, "mutation invalidation must drop the cached aggregate")
}

func TestSetJSONRespectsTTL(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "ttl-key", payload{Name: "x"}, time.Minute))

	var out payload
	found, err := GetJSON(ctx, "ttl-key", &out)
	require.NoError(t, err)
	assert.True(t, found)

	mr.FastForward(2 * time.Minute)

	found, err = GetJSON(ctx, "ttl-key", &out)
	require.NoError(t, err)
	assert.False(t, found, "expired keys read as a miss")
}
