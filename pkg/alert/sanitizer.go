package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tod/pkg/locale"
	"tod/pkg/model"
)

// Clock returns the current time for fallback timestamps and identifiers.
type Clock func() time.Time

// IDGenerator produces a fallback alert identifier.
type IDGenerator func() (string, error)

type Sanitizer struct {
	now       Clock
	newID     IDGenerator
	localeTag string
	location  *time.Location
}

type Option func(*Sanitizer)

func WithClock(c Clock) Option {
	return func(s *Sanitizer) {
		if c != nil {
			s.now = c
		}
	}
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Sanitizer) {
		if g != nil {
			s.newID = g
		}
	}
}

func WithLocale(tag string) Option {
	return func(s *Sanitizer) {
		s.localeTag = tag
	}
}

// WithLocation sets the zone fallback timestamps are rendered in. Without it
// the clock's own zone is used.
func WithLocation(loc *time.Location) Option {
	return func(s *Sanitizer) {
		s.location = loc
	}
}

func NewRandomID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		now:       time.Now,
		newID:     NewRandomID,
		localeTag: locale.DefaultTag,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSanitizer = New()

// Sanitize converts raw into a canonical alert using the system clock and
// random UUIDs for fallbacks.
func Sanitize(raw Raw) model.Alert {
	return defaultSanitizer.Sanitize(raw)
}

func (s *Sanitizer) Sanitize(raw Raw) model.Alert {
	category, label := s.resolveType(raw)
	occurredAt := s.resolveTimestamp(raw)

	message, _ := raw.FirstString(false, messageKeys...)
	recommendation, _ := raw.FirstString(false, recommendationKeys...)

	acknowledged := false
	if v, ok := raw.First(acknowledgedKeys...); ok {
		acknowledged = truthy(v)
	}

	return model.Alert{
		ID:             s.resolveID(raw),
		OccurredAt:     occurredAt,
		Timestamp:      occurredAt,
		Type:           category,
		TypeLabel:      label,
		Message:        message,
		Recommendation: recommendation,
		IsAcknowledged: acknowledged,
	}
}

func (s *Sanitizer) SanitizeAll(raws []Raw) []model.Alert {
	out := make([]model.Alert, 0, len(raws))
	for _, raw := range raws {
		out = append(out, s.Sanitize(raw))
	}
	return out
}

func (s *Sanitizer) resolveID(raw Raw) string {
	if id, ok := raw.FirstString(true, idKeys...); ok {
		return id
	}
	if id, err := s.newID(); err == nil && id != "" {
		return id
	}
	return fmt.Sprintf("alert-%d", s.now().UnixMilli())
}

func (s *Sanitizer) resolveTimestamp(raw Raw) string {
	if ts, ok := raw.FirstString(true, timestampKeys...); ok {
		return ts
	}
	now := s.now()
	if s.location != nil {
		now = now.In(s.location)
	}
	return locale.FormatDateTime(s.localeTag, now)
}

// resolveType maps the raw type code to a category and display label.
// A "warning" record that already carries a non-alarm typeLabel keeps that
// label. Labels never change the category: an alarm stays an alarm and a
// warning is never promoted.
func (s *Sanitizer) resolveType(raw Raw) (string, string) {
	code, _ := raw.FirstString(false, typeKeys...)
	if code == model.CategoryWarning {
		if label, ok := raw.FirstString(true, typeLabelKeys...); ok && strings.ToUpper(label) != model.LabelAlarm {
			code = label
		}
	}

	switch upper := strings.ToUpper(code); upper {
	case "ALARM":
		return model.CategoryAlarm, model.LabelAlarm
	case "WARN", "WARNING", "":
		return model.CategoryWarning, model.LabelWarn
	default:
		return model.CategoryWarning, upper
	}
}
