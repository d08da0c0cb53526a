/**
 *
 * (c) Copyright Ascensio System SIA 2023
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
 *
 */

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/go-redis/redis/v8"
	"github.com/woocommerce/checkout-events/pkg/config"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache stores values serialized with msgpack.
type Cache interface {
	Get(ctx context.Context, key string, out interface{}) error
	Put(ctx context.Context, key string, val interface{}, d time.Duration) error
	Delete(ctx context.Context, key string) error
	String() string
}

type CustomCache struct {
	store *marshaler.Marshaler
	name  string
}

func (c *CustomCache) Get(ctx context.Context, key string, out interface{}) error {
	if _, err := c.store.Get(ctx, key, out); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrCacheMiss, err.Error())
		}
		return err
	}

	return nil
}

// isNotFound separates missing keys from store and decoding failures.
func isNotFound(err error) bool {
	var notFound *store.NotFound
	return errors.As(err, &notFound) ||
		errors.Is(err, redis.Nil) ||
		errors.Is(err, freecache.ErrNotFound)
}

func (c *CustomCache) Put(ctx context.Context, key string, val interface{}, d time.Duration) error {
	return c.store.Set(ctx, key, val, store.WithExpiration(d))
}

func (c *CustomCache) Delete(ctx context.Context, key string) error {
	return c.store.Delete(ctx, key)
}

func (c *CustomCache) String() string {
	return c.name
}

// NewCache builds a freecache (type 0, 1) or redis (type 2) backed cache.
func NewCache(config *config.CacheConfig) Cache {
	switch config.Cache.Type {
	case 2:
		return &CustomCache{
			store: newRedis(config.Cache.Address, config.Cache.Username, config.Cache.Password, config.Cache.Database),
			name:  "Redis",
		}
	default:
		return &CustomCache{
			store: newMemory(config.Cache.Size),
			name:  "Freecache",
		}
	}
}
