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
	"fmt"
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hellofresh/health-go/v5"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/woocommerce/checkout-events/pkg/config"
	plog "github.com/woocommerce/checkout-events/pkg/log"
	"github.com/woocommerce/checkout-events/pkg/middleware"
)

type ServerEngine interface {
	ApplyMiddleware(middlewares ...func(http.Handler) http.Handler)
	NewHandler() http.Handler
}

// HealthReporter is implemented by engines that contribute health checks.
type HealthReporter interface {
	HealthChecks() []health.Config
}

// NewService builds an http server that serves the engine next to /health, /metrics
// and, in debug mode, pprof.
func NewService(
	engine ServerEngine,
	logger plog.Logger,
	serverConfig *config.ServerConfig,
	resilienceConfig *config.ResilienceConfig,
	corsConfig *config.CORSConfig,
	tracerConfig *config.TracerConfig,
) (*http.Server, error) {
	name := strings.Join([]string{serverConfig.Namespace, serverConfig.Name}, ":")
	opts := []health.Option{
		health.WithComponent(health.Component{
			Name:    name,
			Version: fmt.Sprintf("v%d", serverConfig.Version),
		}),
	}

	if reporter, ok := engine.(HealthReporter); ok {
		opts = append(opts, health.WithChecks(reporter.HealthChecks()...))
	}

	h, err := health.New(opts...)
	if err != nil {
		return nil, err
	}

	if tracerConfig.Tracer.Enable {
		engine.ApplyMiddleware(middleware.Trace(name))
	}

	if resilienceConfig.Resilience.RateLimiter.IPLimit > 0 {
		limiter, err := middleware.NewRateLimiter(resilienceConfig.Resilience.RateLimiter.IPLimit, 1*time.Second, middleware.WithKeyFuncIP)
		if err != nil {
			return nil, err
		}
		engine.ApplyMiddleware(limiter)
	}

	if resilienceConfig.Resilience.RateLimiter.Limit > 0 {
		limiter, err := middleware.NewRateLimiter(resilienceConfig.Resilience.RateLimiter.Limit, 1*time.Second, middleware.WithKeyFuncAll)
		if err != nil {
			return nil, err
		}
		engine.ApplyMiddleware(limiter)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/health", h.Handler())

	if serverConfig.Debug {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	mux.Handle("/", engine.NewHandler())

	return &http.Server{
		Addr: serverConfig.Address,
		Handler: alice.New(
			middleware.Log(logger),
			chimiddleware.RealIP,
			chimiddleware.RequestID,
			chimiddleware.StripSlashes,
			middleware.Cors(corsConfig.CORS.AllowedOrigins, corsConfig.CORS.AllowedMethods, corsConfig.CORS.AllowedHeaders, corsConfig.CORS.AllowCredentials),
			middleware.Secure,
			middleware.Version(strconv.Itoa(serverConfig.Version)),
		).Then(mux),
		ReadTimeout:  time.Duration(serverConfig.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(serverConfig.WriteTimeout) * time.Second,
	}, nil
}
