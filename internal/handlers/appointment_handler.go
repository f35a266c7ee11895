package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/httpresp"
	"github.com/studiohair/salon-scheduler/internal/middleware"
	"github.com/studiohair/salon-scheduler/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create    *appointment.CreateAppointment
	update    *appointment.UpdateAppointment
	setStatus *appointment.SetStatus
	byDate    *appointment.ListAppointmentsByDate
	byMonth   *appointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	update *appointment.UpdateAppointment,
	setStatus *appointment.SetStatus,
	byDate *appointment.ListAppointmentsByDate,
	byMonth *appointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:    create,
		update:    update,
		setStatus: setStatus,
		byDate:    byDate,
		byMonth:   byMonth,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Note      string `json:"note"`
}

type UpdateAppointmentRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Note      string `json:"note"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Note:      req.Note,
		ActorID:   actorID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_create_appointment", "Não foi possível criar o agendamento.")
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.update.Execute(c.Request.Context(), appointment.UpdateAppointmentInput{
		ID:        id,
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Note:      req.Note,
		ActorID:   actorID,
	})
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_appointment", "Não foi possível atualizar o agendamento.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	actorID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.setStatus.Execute(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_status", "Não foi possível atualizar o status.")
		return
	}

	httpresp.OK(c, ap)
}

// ListByDate responde GET /appointments?date=YYYY-MM-DD
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data no formato YYYY-MM-DD.")
		return
	}

	list, err := h.byDate.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_list_appointments", "Não foi possível listar os agendamentos.")
		return
	}

	httpresp.List(c, list)
}

// ListByMonth responde GET /appointments/month?year=YYYY&month=MM
func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	list, err := h.byMonth.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_list_appointments", "Não foi possível listar os agendamentos.")
		return
	}

	httpresp.List(c, list)
}

// paramID parses the :id route param, writing the 400 itself.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return uint(id), true
}
