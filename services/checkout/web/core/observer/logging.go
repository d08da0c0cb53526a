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

package observer

import (
	"context"

	"github.com/woocommerce/checkout-events/pkg/events"
	plog "github.com/woocommerce/checkout-events/pkg/log"
)

func NewFailureLogger(logger plog.Logger) events.Listener {
	return func(ctx context.Context, data any) (*events.Response, error) {
		event, err := eventFrom(data)
		if err != nil {
			return nil, err
		}

		for _, notice := range event.Result.Notices {
			if events.IsSuccessResponse(&notice) {
				continue
			}

			logger.Warnf(
				"checkout %s (order %s) failed in %s: %s",
				event.Checkout.Key, event.Result.OrderID, notice.MessageContext, notice.Message,
			)
		}

		return nil, nil
	}
}
