package units

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ParseNumber reads a user-typed number. It tolerates surrounding and
// grouping whitespace, a comma as decimal separator ("3277,5") and mixed
// grouping ("1.234,5" or "1,234.5"). Anything that does not parse to a
// finite value is reported as absent.
func ParseNumber(s string) (float64, bool) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\'' {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	switch {
	case commas > 0 && dots > 0:
		// The right-most separator is the decimal one
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case commas == 1:
		s = strings.Replace(s, ",", ".", 1)
	case commas > 1:
		s = strings.ReplaceAll(s, ",", "")
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !Finite(v) {
		return 0, false
	}
	return v, true
}

// Number is an optional numeric input. It decodes from a JSON/YAML number or
// from a locale-formatted string; null, empty or unparsable values leave it
// absent (Valid == false).
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number
func Num(v float64) Number {
	return Number{Value: v, Valid: Finite(v)}
}

// Ptr returns a pointer to the value, or nil when absent
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Or returns the value, or def when absent
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

func (n Number) String() string {
	if !n.Valid {
		return "-"
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("number: %w", err)
		}
		n.Value, n.Valid = ParseNumber(s)
		return nil
	}
	n.Value, n.Valid = ParseNumber(string(data))
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	*n = Number{}
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("number: expected a scalar at line %d", value.Line)
	}
	if value.Tag == "!!null" {
		return nil
	}
	n.Value, n.Valid = ParseNumber(value.Value)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (n Number) MarshalYAML() (interface{}, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Value, nil
}

// IsZero lets yaml omitempty drop absent numbers
func (n Number) IsZero() bool {
	return !n.Valid
}
