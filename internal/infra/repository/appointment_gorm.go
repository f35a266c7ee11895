package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Policy snapshot
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDayOff(
	ctx context.Context,
	date string,
) (*models.DayOff, error) {

	var off models.DayOff
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&off).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &off, nil
}

func (r *AppointmentGormRepository) GetBusinessHours(
	ctx context.Context,
	weekday string,
) (*models.BusinessHours, error) {

	var wh models.BusinessHours
	err := r.db.WithContext(ctx).
		Where("weekday = ?", weekday).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *AppointmentGormRepository) GetNotificationSettings(
	ctx context.Context,
) (*models.NotificationSettings, error) {

	var ns models.NotificationSettings
	err := r.db.WithContext(ctx).First(&ns).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ns, nil
}

func (r *AppointmentGormRepository) GetSalonProfile(
	ctx context.Context,
) (*models.SalonProfile, error) {

	var profile models.SalonProfile
	if err := r.db.WithContext(ctx).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListForDateRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// SaveValidated serializes writers per date, re-runs the caller's
// validation against what is actually stored and writes only on
// success. Row locks alone are not enough: an empty day has no rows to
// lock and a concurrent insert stays a phantom under READ COMMITTED,
// so the transaction takes a per-date advisory lock first. Two
// concurrent submissions for the same slot queue on that lock; the
// loser then sees the winner's row and gets a conflict.
func (r *AppointmentGormRepository) SaveValidated(
	ctx context.Context,
	ap *models.Appointment,
	revalidate func(existing []models.Appointment) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))", ap.Date,
		).Error; err != nil {
			return err
		}

		var existing []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ?", ap.Date).
			Order("start_time ASC").
			Find(&existing).Error; err != nil {
			return err
		}

		if err := revalidate(existing); err != nil {
			return err
		}

		if ap.ID == 0 {
			return tx.Create(ap).Error
		}
		return tx.Save(ap).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
