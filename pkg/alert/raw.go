package alert

import "tod/pkg/model"

// Raw is an alert payload as received from the backend. No key is required
// and no value has a fixed type.
type Raw map[string]any

// Candidate keys per canonical field, highest priority first.
var (
	idKeys             = []string{"id"}
	timestampKeys      = []string{"timestamp", "occurredAt", "occurred_at"}
	typeKeys           = []string{"type"}
	typeLabelKeys      = []string{"typeLabel"}
	messageKeys        = []string{"message"}
	recommendationKeys = []string{"recommendation", "mannual"}
	acknowledgedKeys   = []string{"isAcknowledged", "ishandled", "is_handled"}
)

// First returns the value of the first key that is present with a non-nil
// value.
func (r Raw) First(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// FirstString is First coerced to a string. Present values that coerce to ""
// are skipped when nonEmpty is set.
func (r Raw) FirstString(nonEmpty bool, keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := r.First(k)
		if !ok {
			continue
		}
		s := toString(v)
		if nonEmpty && s == "" {
			continue
		}
		return s, true
	}
	return "", false
}

// FromAlert turns a canonical alert back into a Raw payload.
func FromAlert(a model.Alert) Raw {
	return Raw{
		"id":             a.ID,
		"occurredAt":     a.OccurredAt,
		"timestamp":      a.Timestamp,
		"type":           a.Type,
		"typeLabel":      a.TypeLabel,
		"message":        a.Message,
		"recommendation": a.Recommendation,
		"isAcknowledged": a.IsAcknowledged,
	}
}
