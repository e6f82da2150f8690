package model

const (
	CategoryAlarm   = "alarm"
	CategoryWarning = "warning"

	LabelAlarm = "ALARM"
	LabelWarn  = "WARN"
)

// Alert is the fully defaulted alert record rendered by the dashboard.
// OccurredAt and Timestamp always carry the same value.
type Alert struct {
	ID             string `json:"id" validate:"required"`
	OccurredAt     string `json:"occurredAt" validate:"required,eqfield=Timestamp"`
	Timestamp      string `json:"timestamp" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=alarm warning"`
	TypeLabel      string `json:"typeLabel" validate:"required,uppercase"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
	IsAcknowledged bool   `json:"isAcknowledged"`
}
