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
	"fmt"

	"github.com/woocommerce/checkout-events/pkg/events"
	plog "github.com/woocommerce/checkout-events/pkg/log"
	"github.com/woocommerce/checkout-events/services/checkout/shared"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
)

const (
	PriorityValidateBilling = events.DefaultPriority
	PriorityValidateCart    = 20
	PriorityPaymentSetup    = events.DefaultPriority
	PriorityFailureLog      = events.DefaultPriority
	PriorityMetrics         = 100
)

// Register subscribes the built-in checkout observers.
func Register(
	emitter events.Emitter,
	config *shared.CheckoutConfig,
	metrics *Metrics,
	logger plog.Logger,
) {
	onValidation := events.CreateSubscribeFunction(emitter, domain.EventCheckoutValidation)
	onValidation(ValidateBillingAddress, PriorityValidateBilling)
	onValidation(ValidateCart, PriorityValidateCart)

	onPaymentSetup := events.CreateSubscribeFunction(emitter, domain.EventPaymentSetup)
	onPaymentSetup(NewPaymentSetup(config), PriorityPaymentSetup)

	onFail := events.CreateSubscribeFunction(emitter, domain.EventCheckoutFail)
	onFail(NewFailureLogger(logger), PriorityFailureLog)

	onAfterProcessing := events.CreateSubscribeFunction(emitter, domain.EventCheckoutAfterProcessing)
	onAfterProcessing(metrics.Observe, PriorityMetrics)

	logger.Debugf("registered %d validation observers", emitter.Listeners(domain.EventCheckoutValidation))
}

func eventFrom(data any) (domain.CheckoutEvent, error) {
	switch e := data.(type) {
	case domain.CheckoutEvent:
		return e, nil
	case *domain.CheckoutEvent:
		if e != nil {
			return *e, nil
		}
	}

	return domain.CheckoutEvent{}, fmt.Errorf("unexpected checkout event payload %T", data)
}
