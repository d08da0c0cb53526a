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
	"github.com/woocommerce/checkout-events/pkg/cache"
	"github.com/woocommerce/checkout-events/pkg/config"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/port"
)

// BuildNewResultAdapter keeps results in process memory for cache type 0
// and in the configured cache otherwise.
func BuildNewResultAdapter(config *config.CacheConfig, cache cache.Cache) port.CheckoutResultAdapter {
	if config.Cache.Type == 0 {
		return NewMemoryResultAdapter()
	}

	return NewCacheResultAdapter(cache)
}
