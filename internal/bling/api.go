package bling

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope models the top-level structure of every Bling API response.
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// Unwrap extracts the data field of a raw response body. A missing data field
// yields a nil RawMessage.
func Unwrap(raw json.RawMessage) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return env.Data, nil
}

// IsEmptyData reports whether an unwrapped data value carries nothing:
// absent, null, {}, [], "", 0 or false.
func IsEmptyData(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return true
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}
