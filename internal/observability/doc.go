// Package observability provides structured logging and distributed
// tracing for the gateway.
//
// Logging is backed by zap behind a small Logger interface so packages
// can log without depending on zap directly. Tracing uses OpenTelemetry
// with an OTLP gRPC exporter; the HTTP middleware in this package ties
// request spans to the logging context.
package observability
