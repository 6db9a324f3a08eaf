package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedBook struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

func TestGetSetJSON(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	var missing cachedBook
	found, err := GetJSON(ctx, BookKey(1), &missing)
	require.NoError(t, err)
	assert.False(t, found)

	stored := cachedBook{ID: 1, Title: "Cached"}
	require.NoError(t, SetJSON(ctx, BookKey(1), stored, time.Minute))

	var loaded cachedBook
	found, err = GetJSON(ctx, BookKey(1), &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, loaded)
}

func TestAside(t *testing.T) {
	withMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedBook) func() error {
		return func() error {
			fetches++
			*dest = cachedBook{ID: 2, Title: "From DB"}
			return nil
		}
	}

	var first cachedBook
	require.NoError(t, Aside(ctx, BookKey(2), &first, time.Minute, fetch(&first)))
	assert.Equal(t, "From DB", first.Title)
	assert.Equal(t, 1, fetches)

	// second read is served from the cache
	var second cachedBook
	require.NoError(t, Aside(ctx, BookKey(2), &second, time.Minute, fetch(&second)))
	assert.Equal(t, "From DB", second.Title)
	assert.Equal(t, 1, fetches)
}

func TestAside_FetchErrorPropagates(t *testing.T) {
	withMiniredis(t)

	wantErr := errors.New("db down")
	var dest cachedBook
	err := Aside(context.Background(), BookKey(3), &dest, time.Minute, func() error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// nothing was cached
	found, err := GetJSON(context.Background(), BookKey(3), &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidatePost_DropsPostAndFirstPage(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, PostKey(5), cachedBook{ID: 5}, time.Minute))
	require.NoError(t, SetJSON(ctx, PostsFirstPageKey, []cachedBook{{ID: 5}}, time.Minute))

	InvalidatePost(ctx, 5)

	assert.False(t, mr.Exists(PostKey(5)))
	assert.False(t, mr.Exists(PostsFirstPageKey))
}

func TestNilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var dest cachedBook
	found, err := GetJSON(ctx, BookKey(9), &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, BookKey(9), cachedBook{ID: 9}, time.Minute))
	Invalidate(ctx, BookKey(9))

	// Aside always falls through to fetch
	called := false
	require.NoError(t, Aside(ctx, BookKey(9), &dest, time.Minute, func() error {
		called = true
		dest = cachedBook{ID: 9}
		return nil
	}))
	assert.True(t, called)
	assert.EqualValues(t, 9, dest.ID)
}
