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

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hellofresh/health-go/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woocommerce/checkout-events/pkg/config"
	"github.com/woocommerce/checkout-events/pkg/log"
)

type mockEngine struct {
	middlewares []func(http.Handler) http.Handler
	healthErr   error
}

func (e *mockEngine) ApplyMiddleware(middlewares ...func(http.Handler) http.Handler) {
	e.middlewares = append(e.middlewares, middlewares...)
}

func (e *mockEngine) NewHandler() http.Handler {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for i := len(e.middlewares) - 1; i >= 0; i-- {
		handler = e.middlewares[i](handler)
	}

	return handler
}

func (e *mockEngine) HealthChecks() []health.Config {
	return []health.Config{{
		Name: "mock",
		Check: func(ctx context.Context) error {
			return e.healthErr
		},
	}}
}

func newTestServer(t *testing.T, engine *mockEngine) *http.Server {
	t.Helper()
	srv, err := NewService(
		engine, log.NewEmptyLogger(),
		&config.ServerConfig{Namespace: "shop", Name: "checkout", Version: 2, Address: ":0"},
		&config.ResilienceConfig{}, &config.CORSConfig{}, &config.TracerConfig{},
	)
	require.NoError(t, err)
	return srv
}

func TestService(t *testing.T) {
	srv := newTestServer(t, &mockEngine{})

	t.Run("routes to the engine", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/checkout", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-Service-Version"))
	})

	t.Run("serves metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("serves health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "shop:checkout")
	})
}

func TestServiceUnhealthy(t *testing.T) {
	srv := newTestServer(t, &mockEngine{healthErr: errors.New("down")})

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
