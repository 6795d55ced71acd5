package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a currency value. The API accepts it as a number but forms have
// historically posted it as a numeric string, so both decode.
type Amount float64

// ParseAmount reads a form value such as "1500", "1500.50" or "1500,50".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse amount %q: not a finite number", s)
	}
	return Amount(v), nil
}

// Format renders the amount with two decimals.
func (a Amount) Format() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode amount: %w", err)
		}
		v, err := ParseAmount(s)
		if err != nil {
			return fmt.Errorf("decode amount: %w", err)
		}
		*a = v
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode amount: %w", err)
	}
	*a = Amount(f)
	return nil
}
