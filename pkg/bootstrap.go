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

package pkg

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/woocommerce/checkout-events/pkg/cache"
	"github.com/woocommerce/checkout-events/pkg/config"
	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/pkg/log"
	shttp "github.com/woocommerce/checkout-events/pkg/service/http"
	"github.com/woocommerce/checkout-events/pkg/trace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/sync/errgroup"
)

type option func(*options)

type options struct {
	invokables []interface{}
	modules    []interface{}
}

func newOptions(opts ...option) options {
	opt := options{}
	for _, o := range opts {
		o(&opt)
	}

	return opt
}

func WithInvokables(val ...interface{}) option {
	return func(o *options) {
		o.invokables = append(o.invokables, val...)
	}
}

func WithModules(val ...interface{}) option {
	return func(o *options) {
		o.modules = append(o.modules, val...)
	}
}

type bootstrapper struct {
	path       string
	invokables []interface{}
	modules    []interface{}
}

func NewBootstrapper(path string, opts ...option) bootstrapper {
	options := newOptions(opts...)
	return bootstrapper{
		path:       path,
		invokables: options.invokables,
		modules:    options.modules,
	}
}

// Options returns every fx option of the application without the lifecycle hooks.
func (b bootstrapper) Options() fx.Option {
	return fx.Options(
		fx.Provide(config.BuildNewCacheConfig(b.path)),
		fx.Provide(config.BuildNewCorsConfig(b.path)),
		fx.Provide(config.BuildNewLoggerConfig(b.path)),
		fx.Provide(config.BuildNewResilienceConfig(b.path)),
		fx.Provide(config.BuildNewServerConfig(b.path)),
		fx.Provide(config.BuildNewTracerConfig(b.path)),
		fx.Provide(cache.NewCache),
		fx.Provide(log.NewLogrusLogger),
		fx.Provide(trace.NewTracer),
		fx.Provide(events.NewEmitter),
		fx.Provide(shttp.NewService),
		fx.Provide(b.modules...),
		fx.Invoke(b.invokables...),
	)
}

func (b bootstrapper) Bootstrap() *fx.App {
	sconf, err := config.BuildNewServerConfig(b.path)()
	if err != nil {
		log := log.NewDefaultLogger(&config.LoggerConfig{})
		log.Fatal(err.Error())
		return nil
	}

	var logger fx.Option = fx.NopLogger
	if sconf.Debug {
		logger = fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		})
	}

	return fx.New(
		b.Options(),
		fx.Invoke(func(
			lifecycle fx.Lifecycle,
			server *http.Server,
			tracer *sdktrace.TracerProvider,
			serverConfig *config.ServerConfig,
			logger log.Logger,
		) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						logger.Infof("starting http server on %s", server.Addr)
						if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
							logger.Errorf("http server failure: %s", err.Error())
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					sctx, cancel := context.WithTimeout(ctx, time.Duration(serverConfig.ShutdownTimeout)*time.Second)
					defer cancel()

					g, gCtx := errgroup.WithContext(sctx)
					g.Go(func() error {
						return server.Shutdown(gCtx)
					})
					g.Go(func() error {
						if tracer == nil {
							return nil
						}
						return tracer.Shutdown(gCtx)
					})
					return g.Wait()
				},
			})
		}),
		logger,
	)
}
