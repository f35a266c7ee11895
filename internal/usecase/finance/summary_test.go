package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/models"
)

func appt(date, status string, price float64) models.Appointment {
	return models.Appointment{Date: date, Status: status, Price: price}
}

func TestSummarize(t *testing.T) {
	aps := []models.Appointment{
		appt("2024-06-03", string(domain.StatusConfirmed), 100), // segunda
		appt("2024-06-03", string(domain.StatusCompleted), 50),  // segunda
		appt("2024-06-04", string(domain.StatusCompleted), 80),  // terca
		appt("2024-06-04", string(domain.StatusCancelled), 200),
		appt("2024-06-05", string(domain.StatusNoShow), 70),
		appt("2024-06-05", string(domain.StatusAwaiting), 90),
	}

	s := Summarize(aps)

	assert.Equal(t, 6, s.Appointments)
	assert.InDelta(t, 230.0, s.Revenue, 0.001)  // 100 + 50 + 80
	assert.InDelta(t, 130.0, s.Received, 0.001) // 50 + 80
	assert.InDelta(t, 230.0/3, s.AverageTicket, 0.001)

	assert.Equal(t, 1, s.StatusCounts[string(domain.StatusConfirmed)])
	assert.Equal(t, 2, s.StatusCounts[string(domain.StatusCompleted)])
	assert.Equal(t, 1, s.StatusCounts[string(domain.StatusCancelled)])
	assert.Equal(t, 1, s.StatusCounts[string(domain.StatusNoShow)])
	assert.Equal(t, 1, s.StatusCounts[string(domain.StatusAwaiting)])

	assert.InDelta(t, 150.0, s.WeekdayRevenue["segunda"], 0.001)
	assert.InDelta(t, 80.0, s.WeekdayRevenue["terca"], 0.001)
	assert.Zero(t, s.WeekdayRevenue["quarta"], "cancelled/no-show earn nothing")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.Received)
	assert.Zero(t, s.AverageTicket, "no division by zero")
	assert.Zero(t, s.Appointments)
}

func TestMonthlySeries(t *testing.T) {
	aps := []models.Appointment{
		appt("2024-01-10", string(domain.StatusCompleted), 100),
		appt("2024-01-20", string(domain.StatusCancelled), 40),
		appt("2024-03-05", string(domain.StatusConfirmed), 60),
		appt("2023-12-31", string(domain.StatusCompleted), 999), // other year
	}

	records := MonthlySeries(aps, 2024)
	assert.Len(t, records, 12)

	assert.Equal(t, "2024-01", records[0].Month)
	assert.InDelta(t, 100.0, records[0].Revenue, 0.001)
	assert.Equal(t, 2, records[0].Appointments, "cancelled still counts as a booking")

	assert.InDelta(t, 60.0, records[2].Revenue, 0.001)
	assert.Equal(t, 1, records[2].Appointments)

	assert.Zero(t, records[11].Revenue)
	assert.Zero(t, records[11].Appointments)
}
