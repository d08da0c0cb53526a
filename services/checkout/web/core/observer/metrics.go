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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/services/checkout/shared"
)

// otherPaymentMethod labels methods that are not enabled in config.
const otherPaymentMethod = "other"

type Metrics struct {
	results *prometheus.CounterVec
	notices *prometheus.CounterVec
	totals  *prometheus.HistogramVec
	config  *shared.CheckoutConfig
}

func NewMetrics(registerer prometheus.Registerer, config *shared.CheckoutConfig) (*Metrics, error) {
	m := &Metrics{
		config: config,
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woocommerce",
			Subsystem: "checkout",
			Name:      "results_total",
			Help:      "Processed checkouts by final status and payment method.",
		}, []string{"status", "payment_method"}),
		notices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "woocommerce",
			Subsystem: "checkout",
			Name:      "notices_total",
			Help:      "Observer responses attached to checkout results.",
		}, []string{"type", "context"}),
		totals: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "woocommerce",
			Subsystem: "checkout",
			Name:      "order_total",
			Help:      "Order totals of completed checkouts in the currency minor unit.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		}, []string{"currency"}),
	}

	for _, collector := range []prometheus.Collector{m.results, m.notices, m.totals} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Observe records a processed checkout. It never reports a response.
func (m *Metrics) Observe(ctx context.Context, data any) (*events.Response, error) {
	event, err := eventFrom(data)
	if err != nil {
		return nil, err
	}

	m.results.WithLabelValues(string(event.Result.Status), m.paymentMethod(event.Checkout.PaymentMethod)).Inc()
	for _, notice := range event.Result.Notices {
		m.notices.WithLabelValues(string(notice.Type), notice.MessageContext).Inc()
	}

	if !event.Result.HasError() {
		m.totals.WithLabelValues(event.Result.Currency).Observe(float64(event.Result.Total))
	}

	return nil, nil
}

func (m *Metrics) paymentMethod(method string) string {
	if !m.config.SupportsPaymentMethod(method) {
		return otherPaymentMethod
	}

	return strings.ToLower(strings.TrimSpace(method))
}
