package appointment

import (
	"context"

	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/dto"
	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if !timeutil.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	appointments, err := uc.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			Price:       ap.Price,
			Note:        ap.Note,
			ClientID:    ap.ClientID,
			ClientName:  ap.Client.Name,
			ServiceID:   ap.ServiceID,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
