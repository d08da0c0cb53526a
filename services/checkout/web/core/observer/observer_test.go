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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/pkg/log"
	"github.com/woocommerce/checkout-events/services/checkout/shared"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
)

func newEvent() domain.CheckoutEvent {
	return domain.CheckoutEvent{
		Checkout: domain.Checkout{
			Key:           "mock",
			Email:         "shopper@example.com",
			PaymentMethod: "cod",
			BillingAddress: domain.Address{
				Address1: "1 Main St",
				City:     "Springfield",
				Postcode: "12345",
				Country:  "US",
			},
			Items: []domain.Item{{ProductID: "hoodie", Quantity: 1, Price: 4500}},
		},
		Result: domain.Result{
			OrderID:  "order",
			Key:      "mock",
			Status:   domain.StatusComplete,
			Total:    4500,
			Currency: "USD",
		},
	}
}

func newConfig() *shared.CheckoutConfig {
	cfg := &shared.CheckoutConfig{}
	cfg.Checkout.PaymentMethods = []string{"cod", "stripe"}
	cfg.Checkout.Currency = "USD"
	return cfg
}

func TestValidateBillingAddress(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		res, err := ValidateBillingAddress(context.Background(), newEvent())
		require.NoError(t, err)
		assert.True(t, events.IsSuccessResponse(res))
	})

	t.Run("missing postcode", func(t *testing.T) {
		event := newEvent()
		event.Checkout.BillingAddress.Postcode = " "
		res, err := ValidateBillingAddress(context.Background(), &event)
		require.NoError(t, err)
		assert.True(t, events.IsFailureResponse(res))
		assert.Equal(t, domain.NoticeContextBillingAddress, res.MessageContext)
		assert.Contains(t, res.Message, "postcode")
	})

	t.Run("unexpected payload", func(t *testing.T) {
		_, err := ValidateBillingAddress(context.Background(), "payload")
		assert.Error(t, err)
	})
}

func TestValidateCart(t *testing.T) {
	t.Run("valid cart has nothing to report", func(t *testing.T) {
		res, err := ValidateCart(context.Background(), newEvent())
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("empty cart", func(t *testing.T) {
		event := newEvent()
		event.Checkout.Items = nil
		res, err := ValidateCart(context.Background(), event)
		require.NoError(t, err)
		assert.True(t, events.IsErrorResponse(res))
		assert.False(t, res.ShouldRetry())
	})

	t.Run("invalid quantity", func(t *testing.T) {
		event := newEvent()
		event.Checkout.Items[0].Quantity = 0
		res, err := ValidateCart(context.Background(), event)
		require.NoError(t, err)
		assert.True(t, events.IsErrorResponse(res))
	})
}

func TestPaymentSetup(t *testing.T) {
	setup := NewPaymentSetup(newConfig())

	t.Run("offline method", func(t *testing.T) {
		res, err := setup(context.Background(), newEvent())
		require.NoError(t, err)
		require.True(t, events.IsSuccessResponse(res))
		assert.Equal(t, "pending", res.Meta["paymentStatus"])
	})

	t.Run("online method keeps payment data", func(t *testing.T) {
		event := newEvent()
		event.Checkout.PaymentMethod = "stripe"
		event.Checkout.PaymentData = map[string]string{"token": "tok_1"}
		res, err := setup(context.Background(), event)
		require.NoError(t, err)
		require.True(t, events.IsSuccessResponse(res))
		assert.Equal(t, "success", res.Meta["paymentStatus"])
		assert.Equal(t, map[string]string{"gateway": "stripe", "token": "tok_1"}, res.Meta["paymentDetails"])
	})

	t.Run("disabled method", func(t *testing.T) {
		event := newEvent()
		event.Checkout.PaymentMethod = "bacs"
		res, err := setup(context.Background(), event)
		require.NoError(t, err)
		assert.True(t, events.IsFailureResponse(res))
		assert.True(t, res.ShouldRetry())
	})
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry, newConfig())
	require.NoError(t, err)

	event := newEvent()
	res, err := metrics.Observe(context.Background(), event)
	assert.NoError(t, err)
	assert.Nil(t, res)

	event.Result.Status = domain.StatusHasError
	event.Result.Notices = []events.Response{*events.NewFailureResponse("declined", domain.NoticeContextPayments)}
	_, err = metrics.Observe(context.Background(), event)
	assert.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.results.WithLabelValues("complete", "cod")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.results.WithLabelValues("has_error", "cod")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.notices.WithLabelValues("failure", domain.NoticeContextPayments)))

	t.Run("unsupported payment methods share one series", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			event := newEvent()
			event.Checkout.PaymentMethod = fmt.Sprintf("junk-%d", i)
			event.Result.Status = domain.StatusHasError
			_, err := metrics.Observe(context.Background(), event)
			require.NoError(t, err)
		}

		assert.Equal(t, 3, testutil.CollectAndCount(metrics.results))
		assert.Equal(t, float64(500), testutil.ToFloat64(metrics.results.WithLabelValues("has_error", otherPaymentMethod)))
	})

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := NewMetrics(registry, newConfig())
		assert.Error(t, err)
	})
}

func TestRegister(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	metrics, err := NewMetrics(prometheus.NewRegistry(), newConfig())
	require.NoError(t, err)

	Register(emitter, newConfig(), metrics, log.NewEmptyLogger())

	assert.Equal(t, 2, emitter.Listeners(domain.EventCheckoutValidation))
	assert.Equal(t, 1, emitter.Listeners(domain.EventPaymentSetup))
	assert.Equal(t, 1, emitter.Listeners(domain.EventCheckoutFail))
	assert.Equal(t, 1, emitter.Listeners(domain.EventCheckoutAfterProcessing))

	t.Run("billing failure aborts before the cart check", func(t *testing.T) {
		event := newEvent()
		event.Checkout.BillingAddress.Country = ""
		event.Checkout.Items = nil
		responses := emitter.EmitWithAbort(context.Background(), domain.EventCheckoutValidation, event)
		require.Len(t, responses, 1)
		assert.Equal(t, events.ResponseTypeFailure, responses[0].Type)
	})
}
