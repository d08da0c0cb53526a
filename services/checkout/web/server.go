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

package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hellofresh/health-go/v5"
	"github.com/woocommerce/checkout-events/pkg/cache"
	shttp "github.com/woocommerce/checkout-events/pkg/service/http"
	"github.com/woocommerce/checkout-events/services/checkout/web/controller"
)

type CheckoutHTTPService struct {
	mux                *chi.Mux
	cache              cache.Cache
	checkoutController controller.CheckoutController
}

// NewServer initializes http server with options.
func NewServer(
	checkoutController controller.CheckoutController,
	cache cache.Cache,
) shttp.ServerEngine {
	return CheckoutHTTPService{
		mux:                chi.NewRouter(),
		cache:              cache,
		checkoutController: checkoutController,
	}
}

// ApplyMiddleware is used to apply http server middlewares.
func (s CheckoutHTTPService) ApplyMiddleware(middlewares ...func(http.Handler) http.Handler) {
	s.mux.Use(middlewares...)
}

// NewHandler returns http server engine.
func (s CheckoutHTTPService) NewHandler() http.Handler {
	return s.InitializeServer()
}

// InitializeServer sets all injected dependencies.
func (s *CheckoutHTTPService) InitializeServer() *chi.Mux {
	s.InitializeRoutes()
	return s.mux
}

// InitializeRoutes builds all http routes.
func (s *CheckoutHTTPService) InitializeRoutes() {
	s.mux.Group(func(r chi.Router) {
		r.Use(chimiddleware.Recoverer, chimiddleware.NoCache)

		r.Route("/api/checkout", func(cr chi.Router) {
			cr.Post("/", s.checkoutController.BuildPostCheckout())
			cr.Get("/", s.checkoutController.BuildGetCheckout())
			cr.Get("/{key}", s.checkoutController.BuildGetCheckout())
		})
	})
}

// HealthChecks probes the result cache with a short lived entry.
func (s CheckoutHTTPService) HealthChecks() []health.Config {
	return []health.Config{
		{
			Name:    fmt.Sprintf("cache:%s", s.cache.String()),
			Timeout: 2 * time.Second,
			Check: func(ctx context.Context) error {
				key := "checkout:health"
				if err := s.cache.Put(ctx, key, "ok", 5*time.Second); err != nil {
					return err
				}

				var val string
				return s.cache.Get(ctx, key, &val)
			},
		},
	}
}
