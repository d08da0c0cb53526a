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

import (
	"encoding/json"
	"time"

	"github.com/woocommerce/checkout-events/pkg/events"
)

// Status follows the checkout store statuses.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusBeforeProcessing Status = "before_processing"
	StatusProcessing       Status = "processing"
	StatusAfterProcessing  Status = "after_processing"
	StatusComplete         Status = "complete"
	StatusHasError         Status = "has_error"
)

type PaymentResult struct {
	PaymentStatus  string            `json:"payment_status" mapstructure:"paymentStatus" msgpack:"payment_status"`
	PaymentDetails map[string]string `json:"payment_details,omitempty" mapstructure:"paymentDetails" msgpack:"payment_details"`
	RedirectURL    string            `json:"redirect_url,omitempty" mapstructure:"redirectUrl" msgpack:"redirect_url"`
}

type Result struct {
	OrderID     string            `json:"order_id" msgpack:"order_id"`
	Key         string            `json:"key" msgpack:"key"`
	Status      Status            `json:"status" msgpack:"status"`
	Total       int64             `json:"total" msgpack:"total"`
	Currency    string            `json:"currency" msgpack:"currency"`
	Payment     PaymentResult     `json:"payment" msgpack:"payment"`
	Notices     []events.Response `json:"notices" msgpack:"notices"`
	ProcessedAt time.Time         `json:"processed_at" msgpack:"processed_at"`
}

func (r Result) HasError() bool {
	return r.Status == StatusHasError
}

func (r Result) ToJSON() []byte {
	buf, _ := json.Marshal(r)
	return buf
}
