// Package validate converts untyped JSON payloads into typed, normalized
// request objects.
//
// Every validator takes a map[string]any — the raw shape encoding/json
// produces for a JSON object — because bridging untyped external input to the
// typed internal model is the whole job. Validation is fail-fast: the first
// violated rule is returned as an apperror.ValidationFailed and no further
// fields are examined.
package validate

import "math"

// asString reports whether v is a JSON string.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asNumber reports whether v is a JSON number. encoding/json decodes every
// JSON number into float64 when the target is `any`.
func asNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// asBool reports whether v is a JSON boolean. Truthy stand-ins (0, 1,
// "false") are rejected — presence of the wrong type is a validation error,
// not a coercion opportunity.
func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asCents reports whether v is a non-negative integral JSON number, returning
// it as int64. Monetary amounts are integer cents; fractional cents are
// rejected rather than silently truncated.
func asCents(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
