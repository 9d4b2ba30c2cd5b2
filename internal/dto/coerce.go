package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Minutes accepts a JSON number or a numeric string, as form inputs often
// send the latter.
type Minutes int

func (m *Minutes) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		return m.set(n.String())
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration: expected number, got %s", b)
	}
	if strings.TrimSpace(s) == "" {
		*m = 0
		return nil
	}
	return m.set(strings.TrimSpace(s))
}

func (m *Minutes) set(s string) error {
	if i, err := strconv.Atoi(s); err == nil {
		*m = Minutes(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("duration: %q is not a number", s)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("duration: %q is not a whole number of minutes", s)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return fmt.Errorf("duration: %q is out of range", s)
	}
	*m = Minutes(f)
	return nil
}
