package validator

import (
	"errors"
	"io"
	"testing"

	"tod/pkg/alert"
	"tod/pkg/logger"
	"tod/pkg/model"
)

func newTestValidator() *AlertValidator {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		Output:    io.Discard,
		AddSource: false,
		Service:   "test",
	})
	return NewAlertValidator(log)
}

func validAlert() model.Alert {
	return model.Alert{
		ID:         "10",
		OccurredAt: "2025-12-10 12:00:00",
		Timestamp:  "2025-12-10 12:00:00",
		Type:       model.CategoryAlarm,
		TypeLabel:  model.LabelAlarm,
	}
}

func TestValidate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		mutate    func(a *model.Alert)
		wantField string
	}{
		{
			name:   "valid alarm",
			mutate: func(a *model.Alert) {},
		},
		{
			name: "valid unknown label",
			mutate: func(a *model.Alert) {
				a.Type = model.CategoryWarning
				a.TypeLabel = "CRITICAL"
			},
		},
		{
			name:      "missing id",
			mutate:    func(a *model.Alert) { a.ID = "" },
			wantField: "ID",
		},
		{
			name:      "timestamps differ",
			mutate:    func(a *model.Alert) { a.OccurredAt = "2025-12-10 12:00:01" },
			wantField: "OccurredAt",
		},
		{
			name:      "unknown category",
			mutate:    func(a *model.Alert) { a.Type = "critical" },
			wantField: "Type",
		},
		{
			name:      "lowercase label",
			mutate:    func(a *model.Alert) { a.TypeLabel = "alarm" },
			wantField: "TypeLabel",
		},
		{
			name: "warning labelled alarm",
			mutate: func(a *model.Alert) {
				a.Type = model.CategoryWarning
			},
			wantField: "TypeLabel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAlert()
			tt.mutate(&a)

			err := v.Validate(&a)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error = %v, want ValidationErrors", err)
			}
			found := false
			for _, e := range verrs {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %v, want one for field %s", verrs, tt.wantField)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if err := newTestValidator().Validate(nil); err == nil {
		t.Errorf("Validate(nil) should return an error")
	}
}

func TestValidate_SanitizedAlertsAlwaysPass(t *testing.T) {
	v := newTestValidator()

	raws := []alert.Raw{
		{},
		{"id": 10, "type": "ALARM", "message": "hi", "ishandled": 1, "timestamp": "2025-12-10 12:00:00"},
		{"type": "critical", "mannual": "call operator"},
		{"type": 7, "is_handled": "yes", "occurred_at": "2025-12-10 12:00:00"},
		{"id": "", "timestamp": "", "type": ""},
	}

	for _, raw := range raws {
		a := alert.Sanitize(raw)
		if err := v.Validate(&a); err != nil {
			t.Errorf("Validate(Sanitize(%v)) error = %v", raw, err)
		}
	}
}
