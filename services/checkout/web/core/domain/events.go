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

package domain

// Checkout lifecycle events.
const (
	EventCheckoutValidation      = "checkout_validation"
	EventPaymentSetup            = "payment_setup"
	EventCheckoutSuccess         = "checkout_success"
	EventCheckoutFail            = "checkout_fail"
	EventCheckoutAfterProcessing = "checkout_after_processing"
)

// Notice contexts observers attach their messages to.
const (
	NoticeContextCheckout       = "wc/checkout"
	NoticeContextBillingAddress = "wc/checkout/billing-address"
	NoticeContextPayments       = "wc/checkout/payments"
)

// CheckoutEvent is the payload every checkout observer receives.
type CheckoutEvent struct {
	Checkout Checkout
	Result   Result
}
