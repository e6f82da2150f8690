package locale

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultTag = "ko-KR"
)

type Locale struct {
	Tag             string    // BCP 47 language tag (e.g., "ko-KR")
	Name            string    // Human-readable locale name
	Meridiem        [2]string // Before-noon and after-noon markers
	DefaultTimezone string    // IANA timezone identifier (e.g., "Asia/Seoul")
}

var (
	Locales = map[string]Locale{
		"ko-KR": {
			Tag:             "ko-KR",
			Name:            "Korean (South Korea)",
			Meridiem:        [2]string{"오전", "오후"},
			DefaultTimezone: "Asia/Seoul",
		},
	}
)

func Lookup(tag string) Locale {
	for key, l := range Locales {
		if strings.EqualFold(key, tag) {
			return l
		}
	}
	return Locales[DefaultTag]
}

// FormatDateTime renders t the way ko-KR date/time strings are written:
// "2025. 12. 10. 오후 3:04:05". Unknown tags fall back to ko-KR.
func FormatDateTime(tag string, t time.Time) string {
	l := Lookup(tag)

	marker := l.Meridiem[0]
	if t.Hour() >= 12 {
		marker = l.Meridiem[1]
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), marker, hour, t.Minute(), t.Second())
}

// Location loads the locale's default timezone, falling back to the local
// zone when the timezone database is unavailable.
func (l Locale) Location() *time.Location {
	if l.DefaultTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(l.DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}
