package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"bankist/model"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-process ICacheClient backed by a map.
type fakeCache struct {
	data   map[string]string
	gets   int
	hits   int
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) *redis.StringCmd {
	c.gets++
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	v, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	c.hits++
	return redis.NewStringResult(v, nil)
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := c.data[k]; ok {
			delete(c.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestCachedAccountRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryAccountRepository()
	require.NoError(t, mem.CreateAccount(ctx, newTestAccount("js", 200, 450)))
	cache := newFakeCache()
	repo := NewCachedAccountRepository(mem, cache, time.Minute)

	first, err := repo.GetAccountByUsername(ctx, "js")
	require.NoError(t, err)
	assert.Equal(t, 0, cache.hits)
	assert.Contains(t, cache.data, "account:js")

	second, err := repo.GetAccountByUsername(ctx, "js")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, first.PinHash, second.PinHash, "pin hash must survive the cache")
	require.Len(t, second.Movements, 2)
	assert.True(t, second.Movements[1].Amount.Equal(decimal.NewFromInt(450)))
}

func TestCachedAccountRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryAccountRepository()
	require.NoError(t, mem.CreateAccount(ctx, newTestAccount("a", 1000)))
	require.NoError(t, mem.CreateAccount(ctx, newTestAccount("b", 100)))
	cache := newFakeCache()
	repo := NewCachedAccountRepository(mem, cache, time.Minute)

	_, _ = repo.GetAccountByUsername(ctx, "a")
	_, _ = repo.GetAccountByUsername(ctx, "b")
	require.Len(t, cache.data, 2)

	require.NoError(t, repo.Transfer(ctx, "a", "b", decimal.NewFromInt(10), t0))
	assert.Empty(t, cache.data)

	acc, err := repo.GetAccountByUsername(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, acc.Movements, 2)

	require.NoError(t, repo.AppendMovement(ctx, "b", model.Movement{Amount: decimal.NewFromInt(5), Date: t0}))
	assert.NotContains(t, cache.data, "account:b")

	require.NoError(t, repo.DeleteAccount(ctx, "b"))
	_, err = repo.GetAccountByUsername(ctx, "b")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCachedAccountRepository_CacheDown(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryAccountRepository()
	require.NoError(t, mem.CreateAccount(ctx, newTestAccount("a", 1)))
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	repo := NewCachedAccountRepository(mem, cache, time.Minute)

	acc, err := repo.GetAccountByUsername(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", acc.Username)
}
