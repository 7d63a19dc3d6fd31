package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "green", StatusColor(types.StatusConfirmed))
	assert.Equal(t, "yellow", StatusColor(types.StatusPending))
	assert.Equal(t, "red", StatusColor(types.StatusCancelled))
	assert.Equal(t, "blue", StatusColor(types.StatusCompleted))
	assert.Equal(t, "purple", StatusColor(types.StatusRescheduled))
	assert.Equal(t, "gray", StatusColor(types.AppointmentStatus("archived")))
	assert.Equal(t, "gray", StatusColor(""))
}

func TestSortByInstant(t *testing.T) {
	appts := []*types.Appointment{
		{ID: "c", Date: "2025-03-12", Time: "09:00"},
		{ID: "missing", Date: "", Time: ""},
		{ID: "a", Date: "2025-03-10", Time: "09:00"},
		{ID: "b", Date: "2025-03-10", Time: "14:00"},
	}

	sorted := SortByInstant(appts)

	require.Len(t, sorted, 4)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
	assert.Equal(t, "missing", sorted[3].ID)

	// Input order is preserved.
	assert.Equal(t, "c", appts[0].ID)
}

func TestSortByInstant_StableWithinSameSlot(t *testing.T) {
	appts := []*types.Appointment{
		{ID: "first", Date: "2025-03-10", Time: "09:00"},
		{ID: "second", Date: "2025-03-10", Time: "09:00"},
	}

	sorted := SortByInstant(appts)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestPartition(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)

	appts := []*types.Appointment{
		{ID: "future-confirmed", Date: "2025-03-11", Time: "09:00", Status: types.StatusConfirmed},
		{ID: "future-pending", Date: "2025-03-11", Time: "10:00", Status: types.StatusPending},
		{ID: "past-pending", Date: "2025-03-09", Time: "09:00", Status: types.StatusPending},
		{ID: "future-cancelled", Date: "2025-03-11", Time: "09:00", Status: types.StatusCancelled},
		{ID: "past-completed", Date: "2025-03-09", Time: "09:00", Status: types.StatusCompleted},
		{ID: "unparseable-confirmed", Date: "", Time: "", Status: types.StatusConfirmed},
		{ID: "future-rescheduled", Date: "2025-03-11", Time: "09:00", Status: types.StatusRescheduled},
	}

	upcoming := Partition(appts, types.TabUpcoming, now)
	past := Partition(appts, types.TabPast, now)

	upcomingIDs := ids(upcoming)
	pastIDs := ids(past)

	assert.ElementsMatch(t, []string{"future-confirmed", "future-pending", "future-rescheduled"}, upcomingIDs)
	assert.ElementsMatch(t, []string{"past-pending", "future-cancelled", "past-completed", "unparseable-confirmed"}, pastIDs)
}

// Every appointment lands in exactly one tab, whatever its status or slot.
func TestPartition_TabsAreExactComplements(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)

	statuses := []types.AppointmentStatus{
		types.StatusPending, types.StatusConfirmed, types.StatusCancelled,
		types.StatusCompleted, types.StatusRescheduled, types.AppointmentStatus("archived"),
	}
	slots := [][2]string{
		{"2025-03-09", "09:00"},
		{"2025-03-11", "09:00"},
		{"", ""},
		{"garbage", "09:00"},
	}

	var appts []*types.Appointment
	for i, status := range statuses {
		for j, slot := range slots {
			appts = append(appts, &types.Appointment{
				ID:     string(status) + "-" + slot[0] + "-" + string(rune('a'+i*len(slots)+j)),
				Date:   slot[0],
				Time:   slot[1],
				Status: status,
			})
		}
	}

	upcoming := Partition(appts, types.TabUpcoming, now)
	past := Partition(appts, types.TabPast, now)

	assert.Equal(t, len(appts), len(upcoming)+len(past))

	seen := make(map[string]int)
	for _, apt := range upcoming {
		seen[apt.ID]++
	}
	for _, apt := range past {
		seen[apt.ID]++
	}
	for _, apt := range appts {
		assert.Equal(t, 1, seen[apt.ID], "appointment %s should land in exactly one tab", apt.ID)
	}
}

func TestGroupByDate(t *testing.T) {
	appts := SortByInstant([]*types.Appointment{
		{ID: "b", Date: "2025-03-10", Time: "14:00"},
		{ID: "c", Date: "2025-03-12", Time: "09:00"},
		{ID: "a", Date: "2025-03-10", Time: "09:00"},
	})

	groups := GroupByDate(appts)

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-03-10", groups[0].Date)
	assert.Equal(t, []string{"a", "b"}, ids(groups[0].Appointments))
	assert.Equal(t, "2025-03-12", groups[1].Date)
	assert.Equal(t, []string{"c"}, ids(groups[1].Appointments))
}

func TestGroupByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByDate(nil))
}

func TestCalendarEvents(t *testing.T) {
	appts := []*types.Appointment{
		{ID: "apt-1", Date: "2025-03-10", Time: "09:00", PatientName: "Asha Rao", Specialty: "Cardiology", Status: types.StatusConfirmed},
		{ID: "apt-2", Date: "", Time: "", PatientName: "Vikram Mehta", Status: types.StatusCancelled},
	}

	events := CalendarEvents(appts)
	require.Len(t, events, 2)

	assert.Equal(t, "apt-1", events[0].ID)
	assert.Equal(t, "09:00 - Asha Rao", events[0].Title)
	assert.Equal(t, "green", events[0].Color)
	assert.False(t, events[0].Start.IsZero())

	// An unplaceable appointment still shows up, just unpositioned.
	assert.Equal(t, "apt-2", events[1].ID)
	assert.Equal(t, "red", events[1].Color)
	assert.True(t, events[1].Start.IsZero())
}

func ids(appts []*types.Appointment) []string {
	out := make([]string, 0, len(appts))
	for _, apt := range appts {
		out = append(out, apt.ID)
	}
	return out
}
