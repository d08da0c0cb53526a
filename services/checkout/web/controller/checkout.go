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

package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	plog "github.com/woocommerce/checkout-events/pkg/log"
	"github.com/woocommerce/checkout-events/services/checkout/shared"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/port"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/service"
	"golang.org/x/sync/semaphore"
)

// IdempotencyHeader overrides the checkout key sent in the request body.
const IdempotencyHeader = "Idempotency-Key"

type errorResponse struct {
	Error string `json:"error"`
}

type CheckoutController struct {
	service port.CheckoutService
	sem     *semaphore.Weighted
	logger  plog.Logger
}

func NewCheckoutController(
	service port.CheckoutService,
	config *shared.CheckoutConfig,
	logger plog.Logger,
) CheckoutController {
	return CheckoutController{
		service: service,
		sem:     semaphore.NewWeighted(int64(config.Checkout.AllowedSubmits)),
		logger:  logger,
	}
}

func (c CheckoutController) writeJSON(rw http.ResponseWriter, status int, body interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(body); err != nil {
		c.logger.Errorf("could not write checkout response: %s", err.Error())
	}
}

func (c CheckoutController) writeError(rw http.ResponseWriter, err error) {
	var (
		ferr *domain.InvalidModelFieldError
		perr *service.InvalidServiceParameterError
	)

	switch {
	case errors.As(err, &ferr), errors.As(err, &perr):
		c.writeJSON(rw, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrResultNotFound):
		c.writeJSON(rw, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		c.logger.Errorf("checkout request failure: %s", err.Error())
		c.writeJSON(rw, http.StatusInternalServerError, errorResponse{Error: "could not process checkout"})
	}
}

func (c CheckoutController) BuildPostCheckout() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		var body domain.Checkout
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			c.logger.Debugf("could not parse checkout request: %s", err.Error())
			c.writeJSON(rw, http.StatusBadRequest, errorResponse{Error: "malformed checkout body"})
			return
		}

		if key := strings.TrimSpace(r.Header.Get(IdempotencyHeader)); key != "" {
			body.Key = key
		}

		if strings.TrimSpace(body.Key) == "" {
			body.Key = uuid.NewString()
		}

		if ok := c.sem.TryAcquire(1); !ok {
			c.writeJSON(rw, http.StatusTooManyRequests, errorResponse{Error: "too many checkout submits"})
			return
		}

		defer c.sem.Release(1)

		result, err := c.service.Process(r.Context(), body)
		if err != nil {
			c.writeError(rw, err)
			return
		}

		if result.HasError() {
			c.writeJSON(rw, http.StatusUnprocessableEntity, result)
			return
		}

		c.writeJSON(rw, http.StatusOK, result)
	}
}

func (c CheckoutController) BuildGetCheckout() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		result, err := c.service.GetResult(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			c.writeError(rw, err)
			return
		}

		c.writeJSON(rw, http.StatusOK, result)
	}
}
