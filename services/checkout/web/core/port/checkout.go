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

package port

import (
	"context"
	"time"

	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
)

type CheckoutService interface {
	Process(ctx context.Context, checkout domain.Checkout) (domain.Result, error)
	GetResult(ctx context.Context, key string) (domain.Result, error)
}

type CheckoutResultAdapter interface {
	InsertResult(ctx context.Context, result domain.Result, ttl time.Duration) error
	SelectResultByKey(ctx context.Context, key string) (domain.Result, error)
	DeleteResultByKey(ctx context.Context, key string) error
}
