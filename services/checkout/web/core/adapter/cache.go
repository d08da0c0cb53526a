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

package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/woocommerce/checkout-events/pkg/cache"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/port"
)

const keyPrefix = "checkout:result:"

type cacheResultAdapter struct {
	cache cache.Cache
}

func NewCacheResultAdapter(cache cache.Cache) port.CheckoutResultAdapter {
	return cacheResultAdapter{
		cache: cache,
	}
}

func (c cacheResultAdapter) InsertResult(ctx context.Context, result domain.Result, ttl time.Duration) error {
	return c.cache.Put(ctx, keyPrefix+result.Key, result, ttl)
}

func (c cacheResultAdapter) SelectResultByKey(ctx context.Context, key string) (domain.Result, error) {
	var result domain.Result
	if err := c.cache.Get(ctx, keyPrefix+key, &result); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return result, fmt.Errorf("%w: %s", domain.ErrResultNotFound, key)
		}
		return result, err
	}

	return result, nil
}

func (c cacheResultAdapter) DeleteResultByKey(ctx context.Context, key string) error {
	return c.cache.Delete(ctx, keyPrefix+key)
}
