package appointments

import (
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

const (
	dateLayout        = "2006-01-02"
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

// Instant combines a calendar date and a wall-clock time string into a
// single comparable point in local time. ok is false when either part is
// missing or malformed; absence of a valid instant is never an error.
func Instant(date, clock string) (time.Time, bool) {
	if date == "" || clock == "" {
		return time.Time{}, false
	}

	d, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		t, err = time.Parse(timeLayoutSeconds, clock)
		if err != nil {
			return time.Time{}, false
		}
	}

	instant := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
	return instant, true
}

// AppointmentInstant returns the instant of an appointment's slot
func AppointmentInstant(apt *types.Appointment) (time.Time, bool) {
	if apt == nil {
		return time.Time{}, false
	}
	return Instant(apt.Date, apt.Time)
}

// IsUpcoming reports whether the appointment's instant is at or after now.
// Fails closed: an appointment without a valid instant is not upcoming.
func IsUpcoming(apt *types.Appointment, now time.Time) bool {
	instant, ok := AppointmentInstant(apt)
	if !ok {
		return false
	}
	return !instant.Before(now)
}

// ValidateSchedule checks that a date/time pair is well-formed. It is the
// precondition gate of the scheduling protocol: a malformed slot is rejected
// locally, before any store call.
func ValidateSchedule(date, clock string) error {
	if _, ok := Instant(date, clock); !ok {
		return types.NewValidationError(types.ErrCodeInvalidSchedule,
			"date and time must be well-formed calendar date and wall-clock time strings",
			map[string]interface{}{"date": date, "time": clock})
	}
	return nil
}
