package appointment

import (
	"context"

	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

// loadPolicy builds the validator's read-only snapshot for one date:
// the date's day-off entry (if any) and the weekday's schedule row.
func loadPolicy(
	ctx context.Context,
	repo domain.Repository,
	date string,
) (domain.Policy, error) {

	pol := domain.Policy{
		DaysOff: map[string]domain.DayOffEntry{},
		Hours:   map[string]domain.DayHours{},
	}

	off, err := repo.GetDayOff(ctx, date)
	if err != nil {
		return pol, err
	}
	if off != nil {
		pol.DaysOff[date] = domain.DayOffEntry{
			Active: off.Active,
			Reason: off.Reason,
		}
	}

	weekday, err := timeutil.WeekdayKey(date)
	if err != nil {
		return pol, httperr.ErrBusiness("invalid_date_or_time")
	}

	wh, err := repo.GetBusinessHours(ctx, weekday)
	if err != nil {
		return pol, err
	}
	if wh != nil {
		pol.Hours[weekday] = domain.DayHours{
			Active: wh.Active,
			Open:   wh.Open,
			Close:  wh.Close,
		}
	}

	return pol, nil
}

func decisionErr(d domain.Decision) error {
	return httperr.ErrBusinessMsg(string(d.Reason), d.Message)
}
