package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

func TestInstant(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		ok    bool
	}{
		{"valid date and time", "2025-03-10", "09:00", true},
		{"valid with seconds", "2025-03-10", "09:00:30", true},
		{"empty date", "", "09:00", false},
		{"empty time", "2025-03-10", "", false},
		{"both empty", "", "", false},
		{"malformed date", "10-03-2025", "09:00", false},
		{"malformed time", "2025-03-10", "9am", false},
		{"nonsense date", "not-a-date", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, ok := Instant(tt.date, tt.clock)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.True(t, instant.IsZero())
			}
		})
	}
}

func TestInstant_CombinesDateAndTime(t *testing.T) {
	instant, ok := Instant("2025-03-10", "14:30")
	require.True(t, ok)

	assert.Equal(t, 2025, instant.Year())
	assert.Equal(t, time.March, instant.Month())
	assert.Equal(t, 10, instant.Day())
	assert.Equal(t, 14, instant.Hour())
	assert.Equal(t, 30, instant.Minute())
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		date     string
		clock    string
		upcoming bool
	}{
		{"future slot", "2025-03-11", "09:00", true},
		{"past slot", "2025-03-09", "09:00", false},
		{"exactly now counts as upcoming", "2025-03-10", "09:00", true},
		{"missing date fails closed", "", "09:00", false},
		{"missing time fails closed", "2025-03-10", "", false},
		{"unparseable date fails closed", "garbage", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt := &types.Appointment{Date: tt.date, Time: tt.clock, Status: types.StatusConfirmed}
			assert.Equal(t, tt.upcoming, IsUpcoming(apt, now))
		})
	}
}

func TestIsUpcoming_NilAppointment(t *testing.T) {
	assert.False(t, IsUpcoming(nil, time.Now()))
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("2025-03-10", "09:00"))

	err := ValidateSchedule("2025-03-10", "")
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))

	err = ValidateSchedule("bad", "09:00")
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))
}
