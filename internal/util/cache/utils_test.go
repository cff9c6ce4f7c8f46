package cache_utils

import (
	"testing"
	"time"

	"meetplan/internal/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type cachedItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func Test_CacheUtil_SetGetInvalidate_RoundTripsValue(t *testing.T) {
	cacheUtil := NewCacheUtil[cachedItem](cache.GetCache(), "test:cache_utils:")
	key := uuid.New().String()
	item := cachedItem{ID: uuid.New(), Name: "weekly sync"}

	assert.Nil(t, cacheUtil.Get(key))

	cacheUtil.Set(key, &item)

	cached := cacheUtil.Get(key)
	if assert.NotNil(t, cached) {
		assert.Equal(t, item, *cached)
	}

	cacheUtil.Invalidate(key)
	assert.Nil(t, cacheUtil.Get(key))
}

func Test_CacheUtil_WhenExpiryPasses_ValueIsGone(t *testing.T) {
	cacheUtil := NewCacheUtil[cachedItem](cache.GetCache(), "test:cache_utils:").WithExpiry(time.Second)
	key := uuid.New().String()

	cacheUtil.Set(key, &cachedItem{ID: uuid.New(), Name: "expiring"})
	assert.NotNil(t, cacheUtil.Get(key))

	time.Sleep(1500 * time.Millisecond)

	assert.Nil(t, cacheUtil.Get(key))
}
