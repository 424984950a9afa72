package observability

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// EnableTracing exports spans to a Jaeger collector endpoint such as
// http://jaeger:14268/api/traces. An empty endpoint leaves tracing off.
func (o *Observability) EnableTracing(serviceName, endpoint string) error {
	if endpoint == "" {
		return nil
	}
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
	if err != nil {
		return fmt.Errorf("create jaeger exporter: %w", err)
	}
	return o.useSpanExporter(serviceName, exporter)
}

func (o *Observability) useSpanExporter(serviceName string, exporter sdktrace.SpanExporter, opts ...sdktrace.TracerProviderOption) error {
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	}, opts...)

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	o.tracerProvider = tp
	o.tracer = tp.Tracer(serviceName)
	return nil
}
