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
	"strings"

	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
)

// ValidateBillingAddress rejects checkouts without a usable billing address.
func ValidateBillingAddress(ctx context.Context, data any) (*events.Response, error) {
	event, err := eventFrom(data)
	if err != nil {
		return nil, err
	}

	address := event.Checkout.BillingAddress
	required := []struct {
		value string
		label string
	}{
		{address.Address1, "address"},
		{address.City, "town / city"},
		{address.Postcode, "postcode"},
		{address.Country, "country / region"},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return events.NewFailureResponse(
				"Please enter a billing "+field.label+".", domain.NoticeContextBillingAddress,
			), nil
		}
	}

	return events.NewSuccessResponse(nil), nil
}

// ValidateCart rejects empty carts and malformed line items.
func ValidateCart(ctx context.Context, data any) (*events.Response, error) {
	event, err := eventFrom(data)
	if err != nil {
		return nil, err
	}

	if len(event.Checkout.Items) == 0 {
		return events.NewErrorResponse("Your cart is empty.", domain.NoticeContextCheckout).WithRetry(false), nil
	}

	for _, item := range event.Checkout.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 || item.Price < 0 {
			return events.NewErrorResponse(
				"There are invalid items in your cart.", domain.NoticeContextCheckout,
			).WithRetry(false), nil
		}
	}

	return nil, nil
}
