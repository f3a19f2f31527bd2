/*
 * Copyright 2025 The Locahub Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/pkg/cache"
)

func TestLRUWithExpires(t *testing.T) {
	t.Run("create test", func(t *testing.T) {
		lruCache, err := cache.NewLRUWithExpires[string, string](0, time.Minute, "users")
		assert.ErrorIs(t, err, cache.ErrInvalidMaxSize)
		assert.Nil(t, lruCache)
	})

	t.Run("add test", func(t *testing.T) {
		lruCache, err := cache.NewLRUWithExpires[string, string](1, time.Minute, "users")
		assert.NoError(t, err)

		lruCache.Add("user1", "active")
		status, ok := lruCache.Get("user1")
		assert.True(t, ok)
		assert.Equal(t, "active", status)

		lruCache.Add("user2", "frozen")
		_, ok = lruCache.Get("user1")
		assert.False(t, ok)
		assert.Equal(t, 1, lruCache.Len())
	})

	t.Run("remove test", func(t *testing.T) {
		lruCache, err := cache.NewLRUWithExpires[string, string](2, time.Minute, "users")
		assert.NoError(t, err)

		lruCache.Add("user1", "active")
		assert.True(t, lruCache.Remove("user1"))
		_, ok := lruCache.Get("user1")
		assert.False(t, ok)
	})

	t.Run("expire test", func(t *testing.T) {
		lruCache, err := cache.NewLRUWithExpires[string, string](1, 10*time.Millisecond, "users")
		assert.NoError(t, err)

		lruCache.Add("user1", "active")
		time.Sleep(50 * time.Millisecond)
		_, ok := lruCache.Get("user1")
		assert.False(t, ok)
	})

	t.Run("stats test", func(t *testing.T) {
		lruCache, err := cache.NewLRUWithExpires[string, string](2, time.Minute, "users")
		assert.NoError(t, err)
		assert.Equal(t, float64(0), lruCache.Stats().HitRate())

		lruCache.Add("user1", "active")
		lruCache.Get("user1")
		lruCache.Get("user2")

		stats := lruCache.Stats()
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(1), stats.Misses)
		assert.Equal(t, float64(50), stats.HitRate())
		assert.Equal(t, "users", lruCache.Name())
	})
}
