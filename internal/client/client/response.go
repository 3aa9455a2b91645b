package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// envelope is a decoded JSON object body with fields kept raw, so that
// loosely-typed server answers can be interpreted field by field.
type envelope map[string]json.RawMessage

// parseEnvelope decodes data. A blank body yields an empty envelope; valid
// JSON that is not an object is treated as an object with no fields. Only
// syntactically invalid JSON is an error.
func parseEnvelope(data []byte) (envelope, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return envelope{}, nil
	}

	if !json.Valid(trimmed) {
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, err
		}
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil || env == nil {
		return envelope{}, nil
	}
	return env, nil
}

// truthy follows JavaScript truthiness: absent, null, false, 0 and "" are false.
func (e envelope) truthy(key string) bool {
	raw, ok := e[key]
	if !ok {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

// explicitlyFalse reports whether key is present and exactly JSON false.
func (e envelope) explicitlyFalse(key string) bool {
	raw, ok := e[key]
	return ok && string(bytes.TrimSpace(raw)) == "false"
}

// text renders key as a string. Strings are returned verbatim, lists of
// {"msg": ...} objects (validation error details) are joined, anything else
// is rendered as compact JSON.
func (e envelope) text(key string) string {
	raw, ok := e[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) == len(items) {
			return strings.Join(msgs, "; ")
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// number reads key as an integer, accepting JSON numbers and numeric strings.
func (e envelope) number(key string) int64 {
	raw, ok := e[key]
	if !ok {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int64(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var n int64
		if _, err := fmt.Sscan(s, &n); err == nil {
			return n
		}
	}
	return 0
}

// failureMessage picks detail, then message, then fallback.
func (e envelope) failureMessage(fallback string) string {
	if e.truthy("detail") {
		return e.text("detail")
	}
	if e.truthy("message") {
		return e.text("message")
	}
	return fallback
}
