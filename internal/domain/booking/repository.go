package booking

import (
	"context"

	"github.com/studiohair/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Policy snapshot --------
	GetDayOff(
		ctx context.Context,
		date string,
	) (*models.DayOff, error)

	GetBusinessHours(
		ctx context.Context,
		weekday string,
	) (*models.BusinessHours, error)

	GetNotificationSettings(
		ctx context.Context,
	) (*models.NotificationSettings, error)

	GetSalonProfile(
		ctx context.Context,
	) (*models.SalonProfile, error)

	// -------- Referenced entities --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	// -------- Appointments --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListForDateRange(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveValidated re-reads the day's appointments under a row lock,
	// runs revalidate against them and only then writes ap (insert when
	// ap.ID is zero, full-record update otherwise), all in one
	// transaction. Closes the validate-then-write race.
	SaveValidated(
		ctx context.Context,
		ap *models.Appointment,
		revalidate func(existing []models.Appointment) error,
	) error
}
