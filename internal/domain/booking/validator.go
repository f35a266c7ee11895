package booking

import (
	"fmt"

	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

// ======================================================
// Booking Validator
// ======================================================

// Request is a candidate booking, already parsed and well-formed.
// ExcludeID is set when re-validating an edit so the appointment
// being edited does not conflict with itself.
type Request struct {
	Date        string
	StartTime   string
	ServiceID   uint
	DurationMin int
	ExcludeID   uint
}

type Reason string

const (
	ReasonDayOff       Reason = "day_off"
	ReasonClosedDay    Reason = "closed_day"
	ReasonOutsideHours Reason = "outside_hours"
	ReasonConflict     Reason = "time_conflict"
)

// Decision is the outcome of validating a Request. On accept, EndTime
// carries the computed end for persistence.
type Decision struct {
	OK      bool
	Reason  Reason
	Message string
	EndTime string
}

func accept(endTime string) Decision {
	return Decision{OK: true, EndTime: endTime}
}

func reject(reason Reason, msg string) Decision {
	return Decision{Reason: reason, Message: msg}
}

// Validate decides whether req may be booked, given the policy snapshot
// and the appointments already stored for req.Date. It is a pure
// function: fetching existing bookings and persisting the result are
// the caller's job. Checks run in order and the first failure wins.
func Validate(req Request, pol Policy, existing []models.Appointment) Decision {

	// 1. Day off blocks the whole date, before anything else.
	if off, ok := pol.DaysOff[req.Date]; ok && off.Active {
		msg := "Salão fechado nesta data."
		if off.Reason != "" {
			msg = fmt.Sprintf("Salão fechado: %s.", off.Reason)
		}
		return reject(ReasonDayOff, msg)
	}

	// 2. Weekly schedule for the resolved weekday.
	weekday, err := timeutil.WeekdayKey(req.Date)
	if err != nil {
		return reject(ReasonClosedDay, "Data inválida.")
	}

	day, ok := pol.Hours[weekday]
	if !ok || !day.Active {
		return reject(ReasonClosedDay, fmt.Sprintf("Sem expediente na %s.", weekday))
	}

	startMin, _ := timeutil.ToMinutes(req.StartTime)
	openMin, _ := timeutil.ToMinutes(day.Open)
	closeMin, _ := timeutil.ToMinutes(day.Close)

	// Only the start instant is checked against closing time; a booking
	// may run past close. The end is still kept inside the calendar day.
	if startMin < openMin || startMin >= closeMin {
		return reject(ReasonOutsideHours,
			fmt.Sprintf("Fora do horário de atendimento (%s às %s).", day.Open, day.Close))
	}

	if crosses, _ := timeutil.CrossesMidnight(req.StartTime, req.DurationMin); crosses {
		return reject(ReasonOutsideHours, "O serviço ultrapassaria a meia-noite.")
	}

	// 3. Half-open interval overlap against the day's live bookings.
	endTime, _ := timeutil.AddMinutes(req.StartTime, req.DurationMin)
	newStart := startMin
	newEnd, _ := timeutil.ToMinutes(endTime)
	if newEnd == 0 && req.DurationMin > 0 {
		newEnd = 24 * 60 // interval ending exactly at midnight
	}

	for _, b := range existing {
		if b.ID == req.ExcludeID && req.ExcludeID != 0 {
			continue
		}
		if !OccupiesSlot(b.Status) {
			continue
		}

		existStart, _ := timeutil.ToMinutes(b.StartTime)
		existEnd, _ := timeutil.ToMinutes(b.EndTime)
		if existEnd <= existStart {
			existEnd = 24 * 60 // stored end "00:00" means midnight
		}

		if newStart < existEnd && newEnd > existStart {
			return reject(ReasonConflict,
				fmt.Sprintf("Conflito com agendamento das %s às %s.", b.StartTime, b.EndTime))
		}
	}

	return accept(endTime)
}
