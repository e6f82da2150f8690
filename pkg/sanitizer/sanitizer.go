package sanitizer

import "strings"

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

const (
	DefaultHost = "http://localhost"
	RootPath    = "/"
)

// StripQuotes trims surrounding whitespace and then removes one matching pair
// of single or double quotes.
func StripQuotes(value string) string {
	s := strings.TrimSpace(value)
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

func trimOneTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

func ensureLeadingSlash(s string) string {
	if s == "" {
		return RootPath
	}
	if strings.HasPrefix(s, "/") {
		return s
	}
	return "/" + s
}

func defaultTo(fallback string) Strategy {
	return func(s string) string {
		if s == "" {
			return fallback
		}
		return s
	}
}

func SanitizeSlice(values []string, strategy Strategy) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, v := range values {
		s := strategy(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
