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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/pkg/functional"
	plog "github.com/woocommerce/checkout-events/pkg/log"
	"github.com/woocommerce/checkout-events/services/checkout/shared"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/port"
	"golang.org/x/sync/singleflight"
)

type checkoutService struct {
	adapter port.CheckoutResultAdapter
	emitter events.Emitter
	config  *shared.CheckoutConfig
	logger  plog.Logger
	group   singleflight.Group
}

func NewCheckoutService(
	adapter port.CheckoutResultAdapter,
	emitter events.Emitter,
	config *shared.CheckoutConfig,
	logger plog.Logger,
) port.CheckoutService {
	return &checkoutService{
		adapter: adapter,
		emitter: emitter,
		config:  config,
		logger:  logger,
	}
}

func (s *checkoutService) Process(ctx context.Context, checkout domain.Checkout) (domain.Result, error) {
	s.logger.Debugf("validating checkout %s to perform a process action", checkout.Key)
	if err := checkout.Validate(); err != nil {
		return domain.Result{}, err
	}

	result, err := s.adapter.SelectResultByKey(ctx, checkout.Key)
	if err == nil {
		s.logger.Debugf("checkout %s has already been processed", checkout.Key)
		return result, nil
	}

	if !errors.Is(err, domain.ErrResultNotFound) {
		s.logger.Errorf("could not check checkout %s for a previous result: %s", checkout.Key, err.Error())
		return domain.Result{}, err
	}

	// Duplicate submits share this run, so it must outlive the caller that started it.
	pctx := context.WithoutCancel(ctx)
	res, err, dup := s.group.Do(checkout.Key, func() (interface{}, error) {
		return s.process(pctx, checkout)
	})

	if dup {
		s.logger.Debugf("checkout %s result was shared between concurrent submits", checkout.Key)
	}

	if err != nil {
		return domain.Result{}, err
	}

	result, ok := res.(domain.Result)
	if !ok {
		return domain.Result{}, ErrUnexpectedResult
	}

	return result, nil
}

func (s *checkoutService) process(ctx context.Context, checkout domain.Checkout) (domain.Result, error) {
	tctx, cancel := context.WithTimeout(ctx, time.Duration(s.config.Checkout.Timeout)*time.Second)
	defer cancel()

	state := domain.CheckoutEvent{
		Checkout: checkout,
		Result: domain.Result{
			OrderID:  uuid.NewString(),
			Key:      checkout.Key,
			Status:   domain.StatusIdle,
			Total:    checkout.Total(),
			Currency: s.config.Checkout.Currency,
			Notices:  make([]events.Response, 0),
		},
	}

	state, err := functional.NewPipe[domain.CheckoutEvent]().
		Next(s.validate).
		Next(s.setupPayment).
		StopWhen(func(e domain.CheckoutEvent) bool {
			return e.Result.HasError()
		}).
		Do(tctx, state)
	if err != nil {
		return domain.Result{}, err
	}

	state = s.afterProcessing(tctx, state)
	state.Result.ProcessedAt = time.Now().UTC()

	if err := s.adapter.InsertResult(ctx, state.Result, time.Duration(s.config.Checkout.ResultTTL)*time.Second); err != nil {
		s.logger.Warnf("could not persist checkout %s result: %s", checkout.Key, err.Error())
	}

	s.logger.Debugf("checkout %s processed with status %s", checkout.Key, state.Result.Status)
	return state.Result, nil
}

func (s *checkoutService) validate(ctx context.Context, state domain.CheckoutEvent) (domain.CheckoutEvent, error) {
	state.Result.Status = domain.StatusBeforeProcessing
	responses := s.emitter.EmitWithAbort(ctx, domain.EventCheckoutValidation, state)
	if events.HasFailure(responses) {
		s.logger.Debugf("checkout %s did not pass validation", state.Checkout.Key)
		state.Result.Status = domain.StatusHasError
		state.Result.Notices = append(state.Result.Notices, responses...)
	}

	return state, nil
}

func (s *checkoutService) setupPayment(ctx context.Context, state domain.CheckoutEvent) (domain.CheckoutEvent, error) {
	state.Result.Status = domain.StatusProcessing
	responses := s.emitter.EmitWithAbort(ctx, domain.EventPaymentSetup, state)
	if events.HasFailure(responses) {
		s.logger.Debugf("payment setup for checkout %s failed", state.Checkout.Key)
		state.Result.Status = domain.StatusHasError
		state.Result.Notices = append(state.Result.Notices, responses...)
		return state, nil
	}

	handled := false
	for _, res := range responses {
		if !events.IsSuccessResponse(&res) {
			continue
		}

		handled = true
		if res.Meta == nil {
			continue
		}

		var payment domain.PaymentResult
		if err := mapstructure.Decode(res.Meta, &payment); err != nil {
			s.logger.Errorf("could not decode payment setup meta for checkout %s: %s", state.Checkout.Key, err.Error())
			state.Result.Status = domain.StatusHasError
			state.Result.Notices = append(state.Result.Notices, *events.NewErrorResponse(
				"There was a problem processing the payment. Please try again.", domain.NoticeContextPayments,
			))
			return state, nil
		}

		state.Result.Payment = payment
	}

	if !handled {
		state.Result.Status = domain.StatusHasError
		state.Result.Notices = append(state.Result.Notices, *events.NewErrorResponse(
			"No payment method is available to process this order.", domain.NoticeContextPayments,
		))
	}

	return state, nil
}

func (s *checkoutService) afterProcessing(ctx context.Context, state domain.CheckoutEvent) domain.CheckoutEvent {
	failed := state.Result.HasError()
	state.Result.Status = domain.StatusAfterProcessing

	if failed {
		responses := s.emitter.EmitWithAbort(ctx, domain.EventCheckoutFail, state)
		state.Result.Notices = append(state.Result.Notices, responses...)
	} else {
		responses := s.emitter.EmitWithAbort(ctx, domain.EventCheckoutSuccess, state)
		state.Result.Notices = append(state.Result.Notices, responses...)
		failed = events.HasFailure(responses)
	}

	if failed {
		state.Result.Status = domain.StatusHasError
	} else {
		state.Result.Status = domain.StatusComplete
	}

	state.Result.Notices = append(state.Result.Notices, s.emitter.Emit(ctx, domain.EventCheckoutAfterProcessing, state)...)
	return state
}

func (s *checkoutService) GetResult(ctx context.Context, key string) (domain.Result, error) {
	id := strings.TrimSpace(key)
	if id == "" {
		return domain.Result{}, &InvalidServiceParameterError{
			Name:   "Key",
			Reason: "Should not be blank",
		}
	}

	result, err := s.adapter.SelectResultByKey(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrResultNotFound) {
			s.logger.Errorf("could not select checkout %s result: %s", id, err.Error())
		}
		return domain.Result{}, err
	}

	return result, nil
}
