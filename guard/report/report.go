package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-guard/guard"
	constant "github.com/LerianStudio/lib-guard/guard/constants"
	glog "github.com/LerianStudio/lib-guard/guard/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// Reporter emits telemetry for guard failures on behalf of one component.
// It holds no mutable state and is safe for concurrent use.
type Reporter struct {
	logger    glog.Logger
	counter   metric.Int64Counter
	component string
}

// New builds a Reporter. A nil logger or meter falls back to a no-op
// implementation.
func New(logger glog.Logger, meter metric.Meter, component string) (*Reporter, error) {
	if logger == nil {
		logger = glog.NewNop()
	}

	if meter == nil {
		meter = noop.NewMeterProvider().Meter(constant.TelemetryScopeName)
	}

	counter, err := meter.Int64Counter(
		constant.MetricGuardViolationTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of failed preconditions"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", constant.MetricGuardViolationTotal, err)
	}

	return &Reporter{
		logger:    logger,
		counter:   counter,
		component: component,
	}, nil
}

// Check records err when it is a guard failure and returns it unchanged.
// A nil Reporter passes every error through.
func (r *Reporter) Check(ctx context.Context, operation string, err error) error {
	if r == nil || err == nil {
		return err
	}

	var guardErr *guard.Error
	if !errors.As(err, &guardErr) {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	r.logger.Log(ctx, glog.LevelError, "guard violation",
		glog.String("kind", guardErr.Kind().String()),
		glog.String("param", guardErr.Param()),
		glog.String("component", r.component),
		glog.String("operation", operation),
		glog.Err(err),
	)

	r.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", constant.SanitizeMetricLabel(r.component)),
		attribute.String("operation", constant.SanitizeMetricLabel(operation)),
		attribute.String("kind", guardErr.Kind().String()),
	))

	recordToSpan(ctx, guardErr, r.component, operation)

	return err
}

func recordToSpan(ctx context.Context, guardErr *guard.Error, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrGuardKind, guardErr.Kind().String()),
		attribute.String(constant.AttrGuardParam, guardErr.Param()),
		attribute.String(constant.AttrGuardMessage, guardErr.Message()),
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrGuardComponent, component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String(constant.AttrGuardOperation, operation))
	}

	span.AddEvent(constant.EventGuardViolation, trace.WithAttributes(attrs...))
	span.RecordError(guardErr)
	span.SetStatus(codes.Error, statusMessage(component, operation))
}

func statusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("guard violation in %s/%s", component, operation)
	case component != "":
		return "guard violation in " + component
	case operation != "":
		return "guard violation in " + operation
	default:
		return "guard violation"
	}
}
