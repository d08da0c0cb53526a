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

package shared

import (
	"strings"

	"github.com/woocommerce/checkout-events/pkg/config"
)

type CheckoutConfig struct {
	Checkout struct {
		PaymentMethods []string `yaml:"payment_methods" env:"CHECKOUT_PAYMENT_METHODS,overwrite"`
		Currency       string   `yaml:"currency" env:"CHECKOUT_CURRENCY,overwrite"`
		ResultTTL      int      `yaml:"result_ttl" env:"CHECKOUT_RESULT_TTL,overwrite"`
		Timeout        int      `yaml:"timeout" env:"CHECKOUT_TIMEOUT,overwrite"`
		AllowedSubmits int      `yaml:"allowed_submits" env:"CHECKOUT_ALLOWED_SUBMITS,overwrite"`
	} `yaml:"checkout"`
}

func (cc *CheckoutConfig) Validate() error {
	cc.Checkout.Currency = strings.ToUpper(strings.TrimSpace(cc.Checkout.Currency))

	if len(cc.Checkout.PaymentMethods) == 0 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "PaymentMethods",
			Reason:    "Should contain at least one payment method",
		}
	}

	if len(cc.Checkout.Currency) != 3 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "Currency",
			Reason:    "Should be an ISO 4217 code",
		}
	}

	if cc.Checkout.ResultTTL <= 0 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "ResultTTL",
			Reason:    "Should be greater than zero",
		}
	}

	if cc.Checkout.Timeout <= 0 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "Timeout",
			Reason:    "Should be greater than zero",
		}
	}

	if cc.Checkout.AllowedSubmits <= 0 {
		return &config.InvalidConfigurationParameterError{
			Parameter: "AllowedSubmits",
			Reason:    "Should be greater than zero",
		}
	}

	return nil
}

// SupportsPaymentMethod reports whether method is enabled for checkout.
func (cc *CheckoutConfig) SupportsPaymentMethod(method string) bool {
	for _, m := range cc.Checkout.PaymentMethods {
		if strings.EqualFold(strings.TrimSpace(m), method) {
			return true
		}
	}

	return false
}

func BuildNewCheckoutConfig(path string) func() (*CheckoutConfig, error) {
	return func() (*CheckoutConfig, error) {
		var cfg CheckoutConfig
		cfg.Checkout.PaymentMethods = []string{"cod", "cheque", "bacs"}
		cfg.Checkout.Currency = "USD"
		cfg.Checkout.ResultTTL = 3600
		cfg.Checkout.Timeout = 30
		cfg.Checkout.AllowedSubmits = 100
		if err := config.Load(path, &cfg); err != nil {
			return nil, err
		}

		return &cfg, cfg.Validate()
	}
}
