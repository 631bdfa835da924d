package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString is a string that tolerates numeric JSON values.
// Generated content frequently returns fees and salaries as bare numbers
// even when asked for strings, so decoding must accept both.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
		return nil
	}

	// Fall back to the raw token so a single odd value never sinks the record
	*f = FlexString(strings.Trim(trimmed, `"`))
	return nil
}

// String returns the underlying string value.
func (f FlexString) String() string {
	return string(f)
}

// StringList is a string slice that tolerates a single JSON string,
// a comma-separated string, or a proper JSON array.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = StringList{}
		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = StringList(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		*l = StringList(out)
		return nil
	}

	*l = StringList{}
	return nil
}

// MarshalJSON implements json.Marshaler. A nil list serializes as [].
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
