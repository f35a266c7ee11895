package appointment

import (
	"context"

	"github.com/studiohair/salon-scheduler/internal/audit"
	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/realtime"
	"github.com/studiohair/salon-scheduler/internal/timezone"
)

type SetStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *realtime.Broker
}

func NewSetStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *realtime.Broker,
) *SetStatus {
	return &SetStatus{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	status string,
	actorID uint,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	previous := ap.Status

	tz := timezone.DefaultTimezone
	if profile, err := uc.repo.GetSalonProfile(ctx); err == nil && profile.Timezone != "" {
		tz = profile.Timezone
	}

	domain.ApplyStatus(ap, domain.Status(status), timezone.NowIn(tz))

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": previous, "to": status},
	})

	uc.events.Publish(realtime.Event{Action: "status_changed", Appointment: ap})

	return ap, nil
}
