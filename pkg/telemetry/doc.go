// Package telemetry wires the observability of the census validator.
//
// # Components
//
//   - logging: Structured logging with PII redaction
//   - metrics: Prometheus metrics collection
//   - tracing: OpenTelemetry tracing over OTLP
//   - health: Liveness and readiness endpoints
//
// # Usage
//
//	tel, err := telemetry.New(&cfg.Telemetry, telemetry.BuildInfo{Version: "1.0.0"}, os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//
//	v := validator.New().
//	    WithObserver(tel.Metrics()).
//	    WithTracer(tel.Tracer().Tracer())
//
//	addr, err := tel.Serve() // metrics and health, when metrics are enabled
//
// # PII Protection
//
// Redaction is on by default. CPF, CNPJ, email and phone numbers are
// masked wherever they appear in a log value, and personal fields such as
// name or parent1_name are masked by key.
package telemetry
