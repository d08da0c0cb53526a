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

package trace

import (
	"errors"
	"io"

	"github.com/woocommerce/checkout-events/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

type TracerType int

var (
	Default TracerType = 0
	Zipkin  TracerType = 1
)

var ErrTracerInvalidAddressInitialization = errors.New("could not initialize a zipkin tracer without an address")

// NewTracer initializes a new tracer. It returns a nil provider when tracing is disabled.
func NewTracer(config *config.TracerConfig) (*trace.TracerProvider, error) {
	if !config.Tracer.Enable {
		return nil, nil
	}

	exporter, err := newExporter(config, nil)
	if err != nil {
		return nil, err
	}

	return register(config, exporter), nil
}

func newExporter(config *config.TracerConfig, out io.Writer) (trace.SpanExporter, error) {
	switch TracerType(config.Tracer.TracerType) {
	case Zipkin:
		if config.Tracer.Address == "" {
			return nil, ErrTracerInvalidAddressInitialization
		}
		return zipkin.New(config.Tracer.Address)
	default:
		if out != nil {
			return stdouttrace.New(stdouttrace.WithWriter(out))
		}
		return stdouttrace.New()
	}
}

func register(config *config.TracerConfig, exporter trace.SpanExporter) *trace.TracerProvider {
	name := config.Tracer.Name
	if name == "" {
		name = "default-tracer"
	}

	provider := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(config.Tracer.FractionRatio))),
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(name),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return provider
}
