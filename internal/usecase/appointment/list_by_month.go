package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/studiohair/salon-scheduler/internal/domain/booking"
	"github.com/studiohair/salon-scheduler/internal/dto"
	"github.com/studiohair/salon-scheduler/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	to := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)

	appointments, err := uc.repo.ListForDateRange(ctx, from, to)
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
