package alert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	apperrors "tod/pkg/errors"
)

// Decode reads a JSON payload holding either a single alert object or an
// array of alert objects. Numbers are kept as json.Number so identifiers
// survive without float formatting.
func Decode(r io.Reader) ([]Raw, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.InvalidInput("failed to read alert payload", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Raw{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, apperrors.InvalidInput("alert payload is not valid JSON", err)
	}

	switch v := payload.(type) {
	case map[string]any:
		return []Raw{Raw(v)}, nil
	case []any:
		raws := make([]Raw, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, apperrors.InvalidInput(
					fmt.Sprintf("alert at index %d is not an object", i), nil,
				).WithDetails(map[string]any{"index": i})
			}
			raws = append(raws, Raw(obj))
		}
		return raws, nil
	case nil:
		return []Raw{}, nil
	default:
		return nil, apperrors.InvalidInput("alert payload must be an object or an array of objects", nil)
	}
}
