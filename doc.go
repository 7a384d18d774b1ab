// Package taskmon embeds cooperative cancellation and progress reporting in
// long-running operations.  The root package is a facade: it wires new task
// handles (package task) to the configured reporting consumers - a logrus
// reporter, an event bridge publishing status events over a message queue,
// and an optional OpenTelemetry observer.  Components that only need the
// primitive import package task directly.
package taskmon
