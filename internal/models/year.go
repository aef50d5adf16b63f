package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Year is a stored award year after numeric coercion.
// Documents written by other tools may hold the year as a string, a double
// or something unusable; Valid is false for the last case.
type Year struct {
	Value float64
	Valid bool
}

func YearOf(v int) Year {
	return Year{Value: float64(v), Valid: true}
}

// ParseYear coerces a raw stored value the way a lenient to-numeric
// conversion does: numbers pass, numeric strings are parsed, everything else
// is invalid.
func ParseYear(raw any) Year {
	switch v := raw.(type) {
	case int:
		return Year{Value: float64(v), Valid: true}
	case int32:
		return Year{Value: float64(v), Valid: true}
	case int64:
		return Year{Value: float64(v), Valid: true}
	case float32:
		return floatYear(float64(v))
	case float64:
		return floatYear(v)
	case string:
		return parseYearString(v)
	case []byte:
		return parseYearString(string(v))
	}
	return Year{}
}

func floatYear(f float64) Year {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Year{}
	}
	return Year{Value: f, Valid: true}
}

func parseYearString(s string) Year {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Year{}
	}
	return floatYear(f)
}

// Int returns the year truncated to an integer.
func (y Year) Int() (int, bool) {
	if !y.Valid {
		return 0, false
	}
	return int(y.Value), true
}

func (y Year) MarshalJSON() ([]byte, error) {
	if !y.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(y.Value)
}

func (y *Year) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*y = ParseYear(raw)
	return nil
}
