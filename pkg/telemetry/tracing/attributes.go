package tracing

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys use the "censo.*" namespace.
const (
	// File attributes
	AttrFileName      = "censo.file_name"
	AttrFileSHA256    = "censo.file_sha256"
	AttrSchemaVersion = "censo.schema_version"
	AttrPhase         = "censo.phase"

	// Run attributes
	AttrRunID    = "censo.run_id"
	AttrValid    = "censo.valid"
	AttrErrors   = "censo.errors"
	AttrWarnings = "censo.warnings"
	AttrRecords  = "censo.records"

	// Error attributes
	AttrErrorMessage = "error.message"
)

// SetFileAttributes sets the attributes identifying a submitted file.
func SetFileAttributes(span trace.Span, fileName, schemaVersion string) {
	span.SetAttributes(
		attribute.String(AttrFileName, fileName),
		attribute.String(AttrSchemaVersion, schemaVersion),
	)
}

// SetResultAttributes sets the outcome of a validation run.
func SetResultAttributes(span trace.Span, valid bool, errors, warnings, records int) {
	span.SetAttributes(
		attribute.Bool(AttrValid, valid),
		attribute.Int(AttrErrors, errors),
		attribute.Int(AttrWarnings, warnings),
		attribute.Int(AttrRecords, records),
	)
}

// AttributeBuilder collects span attributes before a span starts.
//
//	opts := tracing.NewAttributeBuilder().
//		WithFile("escola.txt", "2025").
//		WithRun(runID).
//		Build()
//	ctx, span := tracer.Start(ctx, "inbox.process", opts)
type AttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewAttributeBuilder creates an empty builder.
func NewAttributeBuilder() *AttributeBuilder {
	return &AttributeBuilder{}
}

// WithFile adds the file name and schema version.
func (ab *AttributeBuilder) WithFile(fileName, schemaVersion string) *AttributeBuilder {
	ab.attrs = append(ab.attrs, attribute.String(AttrFileName, fileName))
	if schemaVersion != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrSchemaVersion, schemaVersion))
	}
	return ab
}

// WithRun adds the run identifier.
func (ab *AttributeBuilder) WithRun(runID string) *AttributeBuilder {
	if runID != "" {
		ab.attrs = append(ab.attrs, attribute.String(AttrRunID, runID))
	}
	return ab
}

// WithCustom adds an arbitrary attribute. Unsupported value types are
// stored as their string form.
func (ab *AttributeBuilder) WithCustom(key string, value any) *AttributeBuilder {
	switch v := value.(type) {
	case string:
		ab.attrs = append(ab.attrs, attribute.String(key, v))
	case int:
		ab.attrs = append(ab.attrs, attribute.Int(key, v))
	case int64:
		ab.attrs = append(ab.attrs, attribute.Int64(key, v))
	case float64:
		ab.attrs = append(ab.attrs, attribute.Float64(key, v))
	case bool:
		ab.attrs = append(ab.attrs, attribute.Bool(key, v))
	default:
		ab.attrs = append(ab.attrs, attribute.String(key, fmt.Sprint(v)))
	}
	return ab
}

// Build returns the attributes as a span start option.
func (ab *AttributeBuilder) Build() trace.SpanStartOption {
	return trace.WithAttributes(ab.attrs...)
}

// Attributes returns the collected attributes.
func (ab *AttributeBuilder) Attributes() []attribute.KeyValue {
	return ab.attrs
}
