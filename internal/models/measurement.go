package models

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

// FlexNumber is a JSON value that clients may send as a plain number, as a
// string carrying unit noise ("12.5kg"), or omit entirely. It distinguishes
// "absent" from "zero" so callers can fall back to catalog defaults.
type FlexNumber struct {
	value float64
	set   bool
}

// NewFlexNumber returns a FlexNumber holding v.
func NewFlexNumber(v float64) FlexNumber {
	return FlexNumber{value: v, set: true}
}

// IsSet reports whether a value was supplied at all.
func (f FlexNumber) IsSet() bool { return f.set }

// Value returns the numeric value. It may be NaN if the client sent a string
// with no parsable number in it.
func (f FlexNumber) Value() float64 { return f.value }

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		f.value, f.set = n, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f.value, f.set = parseLooseFloat(s), true
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

var nonNumericChars = regexp.MustCompile(`[^0-9.]`)

// parseLooseFloat strips everything but digits and decimal points before
// parsing, so "12.5kg" becomes 12.5. A string with nothing parsable left
// yields NaN; callers must not assume the result is a valid number.
func parseLooseFloat(s string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
