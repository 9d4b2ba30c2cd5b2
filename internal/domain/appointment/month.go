package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

// Bounds of the open range used when no usable month is given.
const (
	MinDay = "0000-01-01"
	MaxDay = "9999-12-31"
)

// MonthRange turns "YYYY-MM" into the inclusive day range of that month.
// Anything that does not parse to a year in 1..9999 and a month in 1..12
// yields the open range [MinDay, MaxDay].
func MonthRange(month string) (from, to string) {
	year, m, ok := parseMonth(month)
	if !ok {
		return MinDay, MaxDay
	}

	// day 0 of the next month is the last day of this one
	last := time.Date(year, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	from = fmt.Sprintf("%04d-%02d-01", year, m)
	to = fmt.Sprintf("%04d-%02d-%02d", year, m, last)
	return from, to
}

func parseMonth(s string) (year, month int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// Less orders appointments by day, then time. Both are zero-padded so
// string comparison matches chronological order.
func Less(a, b models.Appointment) bool {
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	return a.Time < b.Time
}
