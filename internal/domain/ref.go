package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ref is a reference to another entity's id as the API delivered it.
// Some records carry numeric ids as JSON strings ("7"), others as numbers (7);
// Ref keeps the textual form and whether it was quoted so a full-record PUT
// sends the reference back unchanged.
type Ref struct {
	text   string
	quoted bool
}

// RefTo builds a numeric reference to id.
func RefTo(id int) Ref {
	return Ref{text: strconv.Itoa(id)}
}

// ParseRef builds a reference from form input. Numeric input becomes a numeric reference.
func ParseRef(s string) Ref {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}
	}
	if _, err := strconv.Atoi(s); err == nil {
		return Ref{text: s}
	}
	return Ref{text: s, quoted: true}
}

func (r Ref) IsZero() bool { return r.text == "" }

func (r Ref) String() string { return r.text }

// Exact returns the referenced id only when the reference is a JSON number
// with an integral value, so 7, 7.0 and 7e0 all refer to id 7.
func (r Ref) Exact() (int, bool) {
	if r.quoted || r.text == "" {
		return 0, false
	}
	f, ok := r.number()
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Is reports whether the reference is exactly id. Associated trucks and
// delivery trucks are matched this way everywhere.
func (r Ref) Is(id int) bool {
	n, ok := r.Exact()
	return ok && n == id
}

// Coerce reads the reference as an integer. A JSON number is truncated
// (7.9 is 7, 1e2 is 100). A string yields its leading integer, ignoring
// leading spaces and anything after the digits ("12abc" is 12).
func (r Ref) Coerce() (int, bool) {
	if !r.quoted && r.text != "" {
		f, ok := r.number()
		if !ok {
			return 0, false
		}
		return int(math.Trunc(f)), true
	}

	s := strings.TrimLeft(r.text, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}

// number is the value of an unquoted reference, limited to integers a
// float64 holds exactly.
func (r Ref) number() (float64, bool) {
	n := json.Number(r.text)
	if i, err := n.Int64(); err == nil && i >= -1<<53 && i <= 1<<53 {
		return float64(i), true
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return f, true
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.text == "" {
		return []byte("null"), nil
	}
	if r.quoted {
		return json.Marshal(r.text)
	}
	return []byte(r.text), nil
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = Ref{}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode reference: %w", err)
		}
		*r = Ref{text: s, quoted: true}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode reference: %w", err)
		}
		*r = Ref{text: n.String()}
	}
	return nil
}
