package appointment

import (
	"context"

	"github.com/studiohair/salon-scheduler/internal/audit"
	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/realtime"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

type UpdateAppointmentInput struct {
	ID uint

	ClientID  uint
	ServiceID uint

	Date string
	Time string
	Note string

	ActorID uint
}

// UpdateAppointment is the full edit-and-revalidate flow: the whole
// record goes back through the validator with the edited booking
// excluded from its own overlap check, then is rewritten atomically.
type UpdateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *realtime.Broker
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *realtime.Broker,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if !timeutil.IsValidDate(in.Date) || !timeutil.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	pol, err := loadPolicy(ctx, uc.repo, in.Date)
	if err != nil {
		return nil, err
	}

	req := domain.Request{
		Date:        in.Date,
		StartTime:   in.Time,
		ServiceID:   svc.ID,
		DurationMin: svc.DurationMin,
		ExcludeID:   ap.ID,
	}

	// The price snapshot only moves when the service changes; editing
	// date or time keeps what was agreed at booking time.
	if ap.ServiceID != svc.ID {
		ap.Price = svc.Price
	}

	ap.ClientID = client.ID
	ap.ServiceID = svc.ID
	ap.Date = in.Date
	ap.StartTime = in.Time
	ap.Note = in.Note

	ap.Client = models.Client{}
	ap.Service = models.Service{}

	err = uc.repo.SaveValidated(ctx, ap, func(existing []models.Appointment) error {
		d := domain.Validate(req, pol, existing)
		if !d.OK {
			return decisionErr(d)
		}
		ap.EndTime = d.EndTime
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	updated, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		updated = ap
	}

	uc.events.Publish(realtime.Event{Action: "updated", Appointment: updated})

	return updated, nil
}
