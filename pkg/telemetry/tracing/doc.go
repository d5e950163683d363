// Package tracing provides OpenTelemetry tracing for the census validator.
//
// Spans are exported over OTLP/gRPC. The validator opens a span per file
// with children for the harvest, record rules and cross-record passes;
// the inbox wraps each dropped file in its own span.
//
// # Sampling Strategies
//
//   - always: Sample all validations
//   - never: Sample nothing
//   - ratio: Sample a share of validations (default, ratio 1.0)
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	v := validator.New().WithTracer(tracer.Tracer())
//
// # Reports
//
// TraceParent renders the W3C traceparent of the current span; JSON
// reports carry it so a report can be matched with its trace.
package tracing
