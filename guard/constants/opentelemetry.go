package constant

import "unicode/utf8"

// TelemetryScopeName identifies this library as the instrumentation scope for
// meters and tracers.
const TelemetryScopeName = "lib-guard/report"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixGuard is the prefix for guard violation event attributes.
const AttrPrefixGuard = "guard."

// Span event attribute keys.
const (
	AttrGuardKind      = AttrPrefixGuard + "kind"
	AttrGuardParam     = AttrPrefixGuard + "param"
	AttrGuardMessage   = AttrPrefixGuard + "message"
	AttrGuardComponent = AttrPrefixGuard + "component"
	AttrGuardOperation = AttrPrefixGuard + "operation"
)

// MetricGuardViolationTotal is the counter metric for failed preconditions.
const MetricGuardViolationTotal = "guard_violation_total"

// EventGuardViolation is the span event name for failed preconditions.
const EventGuardViolation = "guard.violation"

// SanitizeMetricLabel truncates a label value to at most MaxMetricLabelLength
// bytes to prevent metric cardinality explosion in OTEL backends. The cut never
// splits a multi-byte rune.
func SanitizeMetricLabel(value string) string {
	if len(value) <= MaxMetricLabelLength {
		return value
	}

	n := MaxMetricLabelLength
	for n > 0 && !utf8.RuneStart(value[n]) {
		n--
	}

	return value[:n]
}
