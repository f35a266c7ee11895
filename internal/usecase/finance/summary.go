package finance

import (
	"context"
	"fmt"

	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

// ======================================================
// Aggregate views: plain folds over a date range
// ======================================================

type Summary struct {
	Revenue       float64 `json:"revenue"`
	Received      float64 `json:"received"`
	AverageTicket float64 `json:"average_ticket"`
	Appointments  int     `json:"appointments"`

	StatusCounts   map[string]int     `json:"status_counts"`
	WeekdayRevenue map[string]float64 `json:"weekday_revenue"`
}

type MonthlyRecord struct {
	Month        string  `json:"month"` // YYYY-MM
	Revenue      float64 `json:"revenue"`
	Appointments int     `json:"appointments"`
}

// Summarize folds a set of appointments into the finance numbers:
// revenue counts confirmed + completed, received only completed, the
// average ticket divides revenue by the bookings that earn it.
func Summarize(aps []models.Appointment) Summary {
	s := Summary{
		Appointments:   len(aps),
		StatusCounts:   map[string]int{},
		WeekdayRevenue: map[string]float64{},
	}

	revenueCount := 0
	for _, ap := range aps {
		s.StatusCounts[ap.Status]++

		if !domain.RevenueStatus(ap.Status) {
			continue
		}

		s.Revenue += ap.Price
		revenueCount++

		if weekday, err := timeutil.WeekdayKey(ap.Date); err == nil {
			s.WeekdayRevenue[weekday] += ap.Price
		}

		if domain.Status(ap.Status) == domain.StatusCompleted {
			s.Received += ap.Price
		}
	}

	if revenueCount > 0 {
		s.AverageTicket = s.Revenue / float64(revenueCount)
	}

	return s
}

// MonthlySeries groups revenue-bearing appointments of one year into
// twelve records, including empty months.
func MonthlySeries(aps []models.Appointment, year int) []MonthlyRecord {
	records := make([]MonthlyRecord, 12)
	for m := 0; m < 12; m++ {
		records[m].Month = fmt.Sprintf("%04d-%02d", year, m+1)
	}

	for _, ap := range aps {
		var y, m, d int
		if _, err := fmt.Sscanf(ap.Date, "%d-%d-%d", &y, &m, &d); err != nil {
			continue
		}
		if y != year || m < 1 || m > 12 {
			continue
		}

		rec := &records[m-1]
		rec.Appointments++
		if domain.RevenueStatus(ap.Status) {
			rec.Revenue += ap.Price
		}
	}

	return records
}

// ======================================================
// USE CASE
// ======================================================

type Reports struct {
	repo domain.Repository
}

func NewReports(repo domain.Repository) *Reports {
	return &Reports{repo: repo}
}

func (uc *Reports) SummaryForRange(
	ctx context.Context,
	from string,
	to string,
) (Summary, error) {

	if !timeutil.IsValidDate(from) || !timeutil.IsValidDate(to) || from > to {
		return Summary{}, httperr.ErrBusiness("invalid_date_range")
	}

	aps, err := uc.repo.ListForDateRange(ctx, from, to)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(aps), nil
}

func (uc *Reports) MonthlyForYear(
	ctx context.Context,
	year int,
) ([]MonthlyRecord, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}

	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)

	aps, err := uc.repo.ListForDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return MonthlySeries(aps, year), nil
}
