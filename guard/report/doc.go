// Package report records guard violations as logs, metrics and span events.
//
// The guard package never emits telemetry. Callers that want visibility into
// broken preconditions pass the guard result through a Reporter at the call
// site:
//
//	r, err := report.New(logger, otel.Meter("publisher"), "publisher")
//	if err != nil {
//	    return err
//	}
//
//	topic, err := guard.RequireNonEmptyText(topic, "topic")
//	if err = r.Check(ctx, "create", err); err != nil {
//	    return nil, err
//	}
//
// Check returns the error it was given, so errors.Is and errors.As keep
// working on the result. Errors that are not guard errors pass through
// without telemetry.
//
// # Signals
//
//  1. Logs: one error-level entry with kind, param, component and operation.
//  2. Metrics: guard_violation_total with component/operation/kind labels.
//  3. Tracing: a guard.violation event on the span in ctx, when it is recording.
package report
