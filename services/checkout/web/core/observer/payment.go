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
	"fmt"

	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/services/checkout/shared"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
)

var offlineStatuses = map[string]string{
	"cod":    "pending",
	"cheque": "on-hold",
	"bacs":   "on-hold",
}

// NewPaymentSetup accepts the payment methods enabled in config.
func NewPaymentSetup(config *shared.CheckoutConfig) events.Listener {
	return func(ctx context.Context, data any) (*events.Response, error) {
		event, err := eventFrom(data)
		if err != nil {
			return nil, err
		}

		method := event.Checkout.PaymentMethod
		if !config.SupportsPaymentMethod(method) {
			return events.NewFailureResponse(
				fmt.Sprintf("The %s payment method is not available.", method), domain.NoticeContextPayments,
			).WithRetry(true), nil
		}

		status, ok := offlineStatuses[method]
		if !ok {
			status = "success"
		}

		details := map[string]string{"gateway": method}
		for k, v := range event.Checkout.PaymentData {
			details[k] = v
		}

		return events.NewSuccessResponse(map[string]any{
			"paymentStatus":  status,
			"paymentDetails": details,
		}), nil
	}
}
