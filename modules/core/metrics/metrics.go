package metrics

// Telemetry keys.
var (
	KeyOverrideUpdated   = []string{"oft", "rate_limit_override", "updated"}
	KeyOverrideTriggered = []string{"oft", "rate_limit_override", "triggered"}
	KeyOverrideBatch     = []string{"oft", "rate_limit_override", "batch"}
)

// Prometheus metric labels.
const (
	LabelOverrideKind = "override_kind"
	LabelAction       = "action"
	LabelOutcome      = "outcome"
)
