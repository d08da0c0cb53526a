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
	"net/mail"
	"strings"
)

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
}

type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// Price is the unit price in the currency minor unit.
	Price int64 `json:"price"`
}

type Checkout struct {
	Key            string            `json:"key"`
	Email          string            `json:"email"`
	BillingAddress Address           `json:"billing_address"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentData    map[string]string `json:"payment_data,omitempty"`
	Items          []Item            `json:"items"`
	CustomerNote   string            `json:"customer_note,omitempty"`
}

func (c Checkout) ToJSON() []byte {
	buf, _ := json.Marshal(c)
	return buf
}

// Total sums the line totals.
func (c Checkout) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}

	return total
}

func (c *Checkout) Validate() error {
	c.Key = strings.TrimSpace(c.Key)
	c.Email = strings.TrimSpace(c.Email)
	c.PaymentMethod = strings.ToLower(strings.TrimSpace(c.PaymentMethod))

	if c.Key == "" {
		return &InvalidModelFieldError{
			Model:  "Checkout",
			Field:  "Key",
			Reason: "Should not be empty",
		}
	}

	if c.Email == "" {
		return &InvalidModelFieldError{
			Model:  "Checkout",
			Field:  "Email",
			Reason: "Should not be empty",
		}
	}

	if _, err := mail.ParseAddress(c.Email); err != nil {
		return &InvalidModelFieldError{
			Model:  "Checkout",
			Field:  "Email",
			Reason: "Should be a valid email address",
		}
	}

	if c.PaymentMethod == "" {
		return &InvalidModelFieldError{
			Model:  "Checkout",
			Field:  "Payment Method",
			Reason: "Should not be empty",
		}
	}

	return nil
}
