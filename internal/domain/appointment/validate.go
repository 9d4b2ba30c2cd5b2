package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/models"
)

const (
	DayLayout  = "2006-01-02"
	TimeLayout = "15:04"
)

// Validate checks a new appointment the same way in every store mode.
func Validate(ap *models.Appointment) error {
	if strings.TrimSpace(ap.Day) == "" {
		return httperr.ErrValidation("day", "required")
	}
	if !fixedShape(ap.Day, DayLayout) {
		return httperr.ErrValidation("day", "invalid_format")
	}
	if _, err := time.Parse(DayLayout, ap.Day); err != nil {
		return httperr.ErrValidation("day", "invalid_format")
	}

	if strings.TrimSpace(ap.Time) == "" {
		return httperr.ErrValidation("time", "required")
	}
	if !fixedShape(ap.Time, TimeLayout) {
		return httperr.ErrValidation("time", "invalid_format")
	}
	if _, err := time.Parse(TimeLayout, ap.Time); err != nil {
		return httperr.ErrValidation("time", "invalid_format")
	}

	if ap.Duration <= 0 {
		return httperr.ErrValidation("duration", "must_be_positive")
	}

	if ap.Location == "" {
		return httperr.ErrValidation("location", "required")
	}
	if !IsValidLocation(ap.Location) {
		return httperr.ErrValidation("location", "unknown_location")
	}

	return nil
}

// fixedShape reports whether v has the layout's length with separators in
// the same places. time.Parse alone accepts a one-digit hour, which would
// break string ordering.
func fixedShape(v, layout string) bool {
	if len(v) != len(layout) {
		return false
	}
	for i := 0; i < len(layout); i++ {
		switch layout[i] {
		case '-', ':':
			if v[i] != layout[i] {
				return false
			}
		default:
			if v[i] < '0' || v[i] > '9' {
				return false
			}
		}
	}
	return true
}
