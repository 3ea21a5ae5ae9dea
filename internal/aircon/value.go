package aircon

import (
	"sort"
	"strconv"
)

// Kind discriminates the representations a sensor value can take.
type Kind int

// Value kinds, in coercion priority order.
const (
	KindInt Kind = iota
	KindFloat
	KindText
)

// Value is a sensor reading: an integer, a floating-point number, or raw
// text, depending on what the response body contained. The union is
// closed; ParseValue always produces one of the three kinds.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue creates an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue creates a floating-point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// TextValue creates a text Value.
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// ParseValue coerces a raw string into a Value: try integer, then
// floating-point, else keep the text as-is. The conversion is total —
// it succeeds for every input.
func ParseValue(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return FloatValue(f)
	}
	return TextValue(raw)
}

// Kind returns the value's representation.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer representation and whether the value is an
// integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the value as a float64. Integers convert losslessly for
// the magnitudes a sensor reports; text values return ok=false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Text returns the text representation and whether the value is text.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// String formats the value for display, matching its parsed kind.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// SensorInfo maps sensor keys to parsed values. No schema is enforced:
// any key present in the response is retained, absent keys are simply
// missing (no null-filling). Constructed fresh per query.
type SensorInfo map[string]Value

// Float returns the named reading as a float64. Missing keys and text
// values return ok=false.
func (s SensorInfo) Float(key string) (float64, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// Keys returns the reading keys in sorted order for stable output.
func (s SensorInfo) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
