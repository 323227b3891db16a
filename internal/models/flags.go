package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Flag is a boolean field whose server encoding is inconsistent: depending on
// the endpoint the same flag arrives as a JSON bool, the strings "true"/"t"
// ("false"/"f"), "yes"/"no", or the numbers 0/1. Flag normalizes all of them
// once at the decode boundary so call sites only ever see Bool().
type Flag bool

func (f Flag) Bool() bool { return bool(f) }

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = false
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Flag(n == 1)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "t", "yes", "y", "1":
			*f = true
		default:
			*f = false
		}
		return nil
	}

	return fmt.Errorf("cannot decode %q as flag", data)
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// Money is a peso amount that the server emits either as a JSON number or as
// a numeric string ("1234.50"), depending on the column type behind it.
type Money float64

func (m Money) Float64() float64 { return float64(m) }

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*m = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Money(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot decode %q as amount", data)
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		*m = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cannot parse amount %q", s)
	}
	*m = Money(n)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

// APITime decodes the handful of timestamp layouts the server emits
// (RFC3339 with and without fractional seconds, plain dates). A null or
// empty value decodes to the zero time.
type APITime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", s)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
