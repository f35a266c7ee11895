package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiohair/salon-scheduler/internal/audit"
	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/notify"
	"github.com/studiohair/salon-scheduler/internal/realtime"
)

// fakeRepo keeps everything in memory and reproduces the repository
// contract: SaveValidated serializes writers and revalidates against
// the stored rows before writing.
type fakeRepo struct {
	mu           sync.Mutex
	daysOff      map[string]*models.DayOff
	hours        map[string]*models.BusinessHours
	services     map[uint]*models.Service
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		daysOff: map[string]*models.DayOff{},
		hours: map[string]*models.BusinessHours{
			"segunda": {Weekday: "segunda", Active: true, Open: "09:00", Close: "18:00"},
		},
		services:     map[uint]*models.Service{},
		clients:      map[uint]*models.Client{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeRepo) GetDayOff(_ context.Context, date string) (*models.DayOff, error) {
	return r.daysOff[date], nil
}

func (r *fakeRepo) GetBusinessHours(_ context.Context, weekday string) (*models.BusinessHours, error) {
	return r.hours[weekday], nil
}

func (r *fakeRepo) GetNotificationSettings(context.Context) (*models.NotificationSettings, error) {
	return nil, nil
}

func (r *fakeRepo) GetSalonProfile(context.Context) (*models.SalonProfile, error) {
	return &models.SalonProfile{Name: "Studio Hair"}, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if svc, ok := r.services[id]; ok {
		return svc, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if cl, ok := r.clients[id]; ok {
		return cl, nil
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap, ok := r.appointments[id]; ok {
		copy := *ap
		return &copy, nil
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) listForDateLocked(date string) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date == date {
			out = append(out, *ap)
		}
	}
	return out
}

func (r *fakeRepo) ListForDate(_ context.Context, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listForDateLocked(date), nil
}

func (r *fakeRepo) ListForDateRange(_ context.Context, from, to string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date >= from && ap.Date <= to {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copy := *ap
	r.appointments[ap.ID] = &copy
	return nil
}

func (r *fakeRepo) SaveValidated(
	_ context.Context,
	ap *models.Appointment,
	revalidate func(existing []models.Appointment) error,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := revalidate(r.listForDateLocked(ap.Date)); err != nil {
		return err
	}
	if ap.ID == 0 {
		ap.ID = r.nextID
		r.nextID++
	}
	copy := *ap
	r.appointments[ap.ID] = &copy
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------- Helpers ---------

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	return NewCreateAppointment(
		repo,
		audit.NewDispatcher(audit.New(nil)),
		notify.NewScheduler(nil),
		realtime.NewBroker(),
	)
}

func seed(repo *fakeRepo) {
	repo.clients[1] = &models.Client{ID: 1, Name: "Ana"}
	repo.services[2] = &models.Service{ID: 2, Name: "Corte", DurationMin: 30, Price: 80, Active: true}
}

// --------- Tests ---------

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	uc := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  1,
		ServiceID: 2,
		Date:      "2024-06-03",
		Time:      "10:00",
		ActorID:   1,
	})
	require.NoError(t, err)

	assert.Equal(t, "10:00", ap.StartTime)
	assert.Equal(t, "10:30", ap.EndTime, "end derives from the service duration")
	assert.Equal(t, string(domain.StatusAwaiting), ap.Status)
	assert.InDelta(t, 80.0, ap.Price, 0.001, "price is snapshotted at booking time")
}

func TestCreateAppointmentRejectsConflict(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:00", ActorID: 1,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:15", ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, string(domain.ReasonConflict)))

	// Encostar no fim do anterior é permitido.
	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:30", ActorID: 1,
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	uc := newCreateUC(repo)

	// Dois envios simultâneos do mesmo horário: exatamente um entra.
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:00", ActorID: 1,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		if httperr.IsBusiness(err, string(domain.ReasonConflict)) {
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentRejectsClosedDay(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	uc := newCreateUC(repo)

	// 2024-06-04 é terça e não há linha de horário cadastrada.
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-04", Time: "10:00", ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, string(domain.ReasonClosedDay)))
}

func TestCreateAppointmentRejectsInactiveService(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.services[2].Active = false

	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:00", ActorID: 1,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}

func TestUpdateAppointmentExcludesItself(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	createUC := newCreateUC(repo)
	updateUC := NewUpdateAppointment(
		repo,
		audit.NewDispatcher(audit.New(nil)),
		realtime.NewBroker(),
	)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:00", ActorID: 1,
	})
	require.NoError(t, err)

	// Mover 15 minutos para frente sobrepõe o próprio horário antigo e
	// ainda assim deve passar.
	moved, err := updateUC.Execute(context.Background(), UpdateAppointmentInput{
		ID:       ap.ID,
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:15", ActorID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:15", moved.StartTime)
	assert.Equal(t, "10:45", moved.EndTime)
}

func TestSetStatusStampsTimestamps(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	createUC := newCreateUC(repo)
	statusUC := NewSetStatus(
		repo,
		audit.NewDispatcher(audit.New(nil)),
		realtime.NewBroker(),
	)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, Date: "2024-06-03", Time: "10:00", ActorID: 1,
	})
	require.NoError(t, err)

	done, err := statusUC.Execute(context.Background(), ap.ID, string(domain.StatusCompleted), 1)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)
	assert.Nil(t, done.CancelledAt)

	// Corrigir um concluído para cancelado troca o carimbo, não acumula.
	corrected, err := statusUC.Execute(context.Background(), ap.ID, string(domain.StatusCancelled), 1)
	require.NoError(t, err)
	assert.NotNil(t, corrected.CancelledAt)
	assert.Nil(t, corrected.CompletedAt)

	// E voltar para confirmado limpa os dois.
	back, err := statusUC.Execute(context.Background(), ap.ID, string(domain.StatusConfirmed), 1)
	require.NoError(t, err)
	assert.Nil(t, back.CancelledAt)
	assert.Nil(t, back.CompletedAt)

	_, err = statusUC.Execute(context.Background(), ap.ID, "whatever", 1)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}
