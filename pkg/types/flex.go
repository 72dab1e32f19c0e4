package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes JSON numbers, numeric strings, booleans (as 1/0) and null.
// Valid is false for null, empty strings and non-numeric strings.
type FlexInt struct {
	Value int
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex int: %w", err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			f.Value, f.Valid = int(v), true
		}
		return nil
	}

	switch {
	case bytes.Equal(data, []byte("true")):
		f.Value, f.Valid = 1, true
		return nil
	case bytes.Equal(data, []byte("false")):
		f.Value, f.Valid = 0, true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("flex int: %w", err)
	}
	f.Value, f.Valid = int(v), true
	return nil
}

// MarshalJSON implements json.Marshaler
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Ptr returns nil when the value is not set
func (f FlexInt) Ptr() *int {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexString decodes JSON strings, numbers and null into a string.
// Backend ids arrive as either numbers or strings.
type FlexString struct {
	Value string
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = FlexString{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex string: %w", err)
		}
		f.Value, f.Valid = s, true
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	f.Value, f.Valid = n.String(), true
	return nil
}

// MarshalJSON implements json.Marshaler
func (f FlexString) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// String returns the value or "" when unset
func (f FlexString) String() string {
	return f.Value
}

// Ptr returns nil when the value is unset or blank
func (f FlexString) Ptr() *string {
	if !f.Valid || strings.TrimSpace(f.Value) == "" {
		return nil
	}
	v := f.Value
	return &v
}
