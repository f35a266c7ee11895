package appointment

import (
	"context"

	"github.com/studiohair/salon-scheduler/internal/audit"
	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/notify"
	"github.com/studiohair/salon-scheduler/internal/realtime"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
	"github.com/studiohair/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	ServiceID uint

	Date string
	Time string
	Note string

	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	reminders *notify.Scheduler
	events    *realtime.Broker
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	reminders *notify.Scheduler,
	events *realtime.Broker,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		audit:     audit,
		reminders: reminders,
		events:    events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !timeutil.IsValidDate(in.Date) || !timeutil.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
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
	}

	ap := &models.Appointment{
		ClientID:  client.ID,
		ServiceID: svc.ID,
		Date:      in.Date,
		StartTime: in.Time,
		Price:     svc.Price,
		Status:    string(domain.InitialStatus()),
		Note:      in.Note,
	}

	// The decision runs against the rows actually stored, under the
	// repository's day lock, so a concurrent submit cannot slip in
	// between validate and write.
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
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.scheduleReminder(ctx, ap, client.Name, svc.Name)

	created, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		created = ap
	}

	uc.events.Publish(realtime.Event{Action: "created", Appointment: created})

	return created, nil
}

// scheduleReminder is fire and forget: reminder problems never fail
// the booking that triggered them.
func (uc *CreateAppointment) scheduleReminder(
	ctx context.Context,
	ap *models.Appointment,
	clientName string,
	serviceName string,
) {
	ns, err := uc.repo.GetNotificationSettings(ctx)
	if err != nil || ns == nil || !ns.Active {
		return
	}

	tz := timezone.DefaultTimezone
	if profile, err := uc.repo.GetSalonProfile(ctx); err == nil && profile.Timezone != "" {
		tz = profile.Timezone
	}

	startAt, err := timezone.At(ap.Date, ap.StartTime, tz)
	if err != nil {
		return
	}

	uc.reminders.Schedule(ctx, notify.Reminder{
		AppointmentID: ap.ID,
		ClientName:    clientName,
		ServiceName:   serviceName,
		Date:          ap.Date,
		Time:          ap.StartTime,
	}, startAt, ns.LeadMinutes)
}
