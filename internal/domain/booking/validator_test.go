package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiohair/salon-scheduler/internal/models"
)

// 2024-06-03 is a Monday (segunda).
const monday = "2024-06-03"

func weekdayPolicy() Policy {
	return Policy{
		DaysOff: map[string]DayOffEntry{},
		Hours: map[string]DayHours{
			"segunda": {Active: true, Open: "09:00", Close: "18:00"},
		},
	}
}

func appt(id uint, start, end, status string) models.Appointment {
	return models.Appointment{
		ID:        id,
		Date:      monday,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestValidateClosedDay(t *testing.T) {
	pol := weekdayPolicy()

	// 2024-06-04 is terca, which has no schedule entry at all.
	d := Validate(Request{Date: "2024-06-04", StartTime: "10:00", DurationMin: 30}, pol, nil)
	require.False(t, d.OK)
	assert.Equal(t, ReasonClosedDay, d.Reason)

	// Inactive weekday rejects the same way.
	pol.Hours["segunda"] = DayHours{Active: false, Open: "09:00", Close: "18:00"}
	d = Validate(Request{Date: monday, StartTime: "10:00", DurationMin: 30}, pol, nil)
	require.False(t, d.OK)
	assert.Equal(t, ReasonClosedDay, d.Reason)
}

func TestValidateDayOffWinsOverHours(t *testing.T) {
	pol := weekdayPolicy()
	pol.DaysOff[monday] = DayOffEntry{Active: true, Reason: "Feriado"}

	// Start outside hours too: day-off must still be the reported reason.
	d := Validate(Request{Date: monday, StartTime: "07:00", DurationMin: 30}, pol, nil)
	require.False(t, d.OK)
	assert.Equal(t, ReasonDayOff, d.Reason)
	assert.Contains(t, d.Message, "Feriado")
}

func TestValidateInactiveDayOffIsIgnored(t *testing.T) {
	pol := weekdayPolicy()
	pol.DaysOff[monday] = DayOffEntry{Active: false, Reason: "Feriado"}

	d := Validate(Request{Date: monday, StartTime: "10:00", DurationMin: 30}, pol, nil)
	assert.True(t, d.OK)
}

func TestValidateHoursBoundaries(t *testing.T) {
	pol := weekdayPolicy()

	cases := []struct {
		start string
		ok    bool
	}{
		{"08:59", false},
		{"09:00", true},  // start exactly at open accepts
		{"17:59", true},  // end may run past close
		{"18:00", false}, // start exactly at close rejects
		{"18:01", false},
	}
	for _, c := range cases {
		d := Validate(Request{Date: monday, StartTime: c.start, DurationMin: 30}, pol, nil)
		assert.Equal(t, c.ok, d.OK, "start %s", c.start)
		if !c.ok {
			assert.Equal(t, ReasonOutsideHours, d.Reason, "start %s", c.start)
		}
	}
}

func TestValidateRejectsMidnightWrap(t *testing.T) {
	pol := Policy{
		DaysOff: map[string]DayOffEntry{},
		Hours: map[string]DayHours{
			"segunda": {Active: true, Open: "09:00", Close: "23:59"},
		},
	}

	d := Validate(Request{Date: monday, StartTime: "23:50", DurationMin: 30}, pol, nil)
	require.False(t, d.OK)
	assert.Equal(t, ReasonOutsideHours, d.Reason)

	// Ending exactly at midnight is still within the calendar day.
	d = Validate(Request{Date: monday, StartTime: "23:00", DurationMin: 60}, pol, nil)
	assert.True(t, d.OK)
	assert.Equal(t, "00:00", d.EndTime)
}

func TestValidateOverlapWithMidnightEnd(t *testing.T) {
	pol := Policy{
		DaysOff: map[string]DayOffEntry{},
		Hours: map[string]DayHours{
			"segunda": {Active: true, Open: "09:00", Close: "23:59"},
		},
	}

	// A stored booking ending exactly at midnight carries EndTime
	// "00:00"; the overlap scan must read that as 24:00, not 00:00.
	existing := []models.Appointment{
		appt(1, "23:00", "00:00", string(StatusConfirmed)),
	}

	d := Validate(Request{Date: monday, StartTime: "23:30", DurationMin: 20}, pol, existing)
	require.False(t, d.OK)
	assert.Equal(t, ReasonConflict, d.Reason)

	d = Validate(Request{Date: monday, StartTime: "22:30", DurationMin: 30}, pol, existing)
	assert.True(t, d.OK, "touching the midnight booking's start is fine")
}

func TestValidateOverlap(t *testing.T) {
	pol := weekdayPolicy()
	existing := []models.Appointment{
		appt(1, "09:00", "10:00", string(StatusConfirmed)),
	}

	// Touching boundary does not conflict.
	d := Validate(Request{Date: monday, StartTime: "10:00", DurationMin: 60}, pol, existing)
	assert.True(t, d.OK)
	assert.Equal(t, "11:00", d.EndTime)

	// Partial overlap conflicts.
	d = Validate(Request{Date: monday, StartTime: "09:30", DurationMin: 60}, pol, existing)
	require.False(t, d.OK)
	assert.Equal(t, ReasonConflict, d.Reason)

	// Fully contained conflicts.
	d = Validate(Request{Date: monday, StartTime: "09:15", DurationMin: 15}, pol, existing)
	require.False(t, d.OK)
	assert.Equal(t, ReasonConflict, d.Reason)
}

func TestValidateIgnoresCancelledAndNoShow(t *testing.T) {
	pol := weekdayPolicy()
	existing := []models.Appointment{
		appt(1, "09:00", "10:00", string(StatusCancelled)),
		appt(2, "10:00", "11:00", string(StatusNoShow)),
	}

	d := Validate(Request{Date: monday, StartTime: "09:00", DurationMin: 60}, pol, existing)
	assert.True(t, d.OK)

	d = Validate(Request{Date: monday, StartTime: "10:00", DurationMin: 60}, pol, existing)
	assert.True(t, d.OK)
}

func TestValidateEditExcludesSelf(t *testing.T) {
	pol := weekdayPolicy()
	existing := []models.Appointment{
		appt(7, "09:00", "10:00", string(StatusConfirmed)),
	}

	// Re-validating the unchanged booking against itself must accept.
	d := Validate(Request{Date: monday, StartTime: "09:00", DurationMin: 60, ExcludeID: 7}, pol, existing)
	assert.True(t, d.OK)
	assert.Equal(t, "10:00", d.EndTime)

	// Without the exclusion it conflicts with itself.
	d = Validate(Request{Date: monday, StartTime: "09:00", DurationMin: 60}, pol, existing)
	require.False(t, d.OK)
	assert.Equal(t, ReasonConflict, d.Reason)
}

func TestValidateEndToEndScenario(t *testing.T) {
	pol := weekdayPolicy()
	existing := []models.Appointment{
		appt(1, "09:00", "10:00", string(StatusConfirmed)),
	}

	d := Validate(Request{Date: monday, StartTime: "09:30", DurationMin: 30}, pol, existing)
	require.False(t, d.OK)
	assert.Equal(t, ReasonConflict, d.Reason)

	d = Validate(Request{Date: monday, StartTime: "10:00", DurationMin: 30}, pol, existing)
	require.True(t, d.OK)
	assert.Equal(t, "10:30", d.EndTime)
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, OccupiesSlot(string(StatusAwaiting)))
	assert.True(t, OccupiesSlot(string(StatusConfirmed)))
	assert.True(t, OccupiesSlot(string(StatusCompleted)))
	assert.False(t, OccupiesSlot(string(StatusCancelled)))
	assert.False(t, OccupiesSlot(string(StatusNoShow)))

	assert.True(t, IsValidStatus("confirmed"))
	assert.False(t, IsValidStatus("scheduled"))

	assert.Equal(t, StatusAwaiting, InitialStatus())
}
