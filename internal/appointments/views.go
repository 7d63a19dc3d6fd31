package appointments

import (
	"fmt"
	"sort"
	"time"

	"github.com/ShahbazAhmad08/Docto-booking2nd/pkg/types"
)

// statusColors is the fixed presentation mapping reproduced for behavioral
// parity with the client views.
var statusColors = map[types.AppointmentStatus]string{
	types.StatusConfirmed:   "green",
	types.StatusPending:     "yellow",
	types.StatusCancelled:   "red",
	types.StatusCompleted:   "blue",
	types.StatusRescheduled: "purple",
}

const unknownStatusColor = "gray"

// StatusColor returns the calendar color for a status
func StatusColor(status types.AppointmentStatus) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return unknownStatusColor
}

// SortByInstant returns a copy ordered ascending by combined date+time
// instant. The sort is stable and runs once, upstream of filtering, so
// within-group order reflects time of day. Records without a valid instant
// sink to the end.
func SortByInstant(appts []*types.Appointment) []*types.Appointment {
	sorted := make([]*types.Appointment, len(appts))
	copy(sorted, appts)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := AppointmentInstant(sorted[i])
		b, bok := AppointmentInstant(sorted[j])
		if aok != bok {
			return aok
		}
		if !aok {
			return false
		}
		return a.Before(b)
	})

	return sorted
}

// Partition filters an appointment set into one tab's view.
//
// Upcoming keeps active appointments whose instant has not passed; past
// keeps everything else. Terminal status always overrides temporal
// position: a pending appointment whose instant has passed is past, and a
// cancelled appointment whose instant is still in the future is also past.
// The two tabs are exact complements, so their union is the input set.
func Partition(appts []*types.Appointment, tab string, now time.Time) []*types.Appointment {
	var filtered []*types.Appointment
	for _, apt := range appts {
		upcoming := !apt.Status.IsTerminal() && IsUpcoming(apt, now)
		if (tab == types.TabUpcoming) == upcoming {
			filtered = append(filtered, apt)
		}
	}
	return filtered
}

// GroupByDate buckets appointments by their exact date string, preserving
// first-seen date order. Callers sort by instant first.
func GroupByDate(appts []*types.Appointment) []types.DateGroup {
	var groups []types.DateGroup
	index := make(map[string]int)

	for _, apt := range appts {
		i, ok := index[apt.Date]
		if !ok {
			i = len(groups)
			index[apt.Date] = i
			groups = append(groups, types.DateGroup{Date: apt.Date})
		}
		groups[i].Appointments = append(groups[i].Appointments, apt)
	}

	return groups
}

// CalendarEvents maps the full appointment set 1:1 into positioned events
// keyed by instant. The set is not tab-filtered: the calendar shows
// everything, colored by status.
func CalendarEvents(appts []*types.Appointment) []types.CalendarEvent {
	events := make([]types.CalendarEvent, 0, len(appts))
	for _, apt := range appts {
		start, _ := AppointmentInstant(apt)
		events = append(events, types.CalendarEvent{
			ID:          apt.ID,
			Start:       start,
			Title:       fmt.Sprintf("%s - %s", apt.Time, apt.PatientName),
			PatientName: apt.PatientName,
			Specialty:   apt.Specialty,
			Status:      apt.Status,
			Color:       StatusColor(apt.Status),
		})
	}
	return events
}
