package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiohair/salon-scheduler/internal/httpresp"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

type DaysOffHandler struct {
	db *gorm.DB
}

func NewDaysOffHandler(db *gorm.DB) *DaysOffHandler {
	return &DaysOffHandler{db: db}
}

// --------- Requests ---------

type CreateDayOffRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason"`
}

type ToggleDayOffRequest struct {
	Active bool `json:"active"`
}

// --------- Handlers ---------

func (h *DaysOffHandler) List(c *gin.Context) {
	var daysOff []models.DayOff

	query := h.db.Order("date ASC")
	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}

	if err := query.Find(&daysOff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_days_off"})
		return
	}

	httpresp.List(c, daysOff)
}

func (h *DaysOffHandler) Create(c *gin.Context) {
	var req CreateDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !timeutil.IsValidDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_date",
			"message": "Informe a data no formato YYYY-MM-DD.",
		})
		return
	}

	// Reativa um registro existente em vez de duplicar a data.
	var existing models.DayOff
	err := h.db.Where("date = ?", req.Date).First(&existing).Error
	if err == nil {
		existing.Active = true
		existing.Reason = req.Reason
		if err := h.db.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_day_off"})
			return
		}
		httpresp.OK(c, existing)
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_day_off"})
		return
	}

	dayOff := models.DayOff{
		Date:   req.Date,
		Active: true,
		Reason: req.Reason,
	}

	if err := h.db.Create(&dayOff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_day_off"})
		return
	}

	httpresp.Created(c, dayOff)
}

// Toggle liga e desliga a folga sem perder o histórico.
func (h *DaysOffHandler) Toggle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req ToggleDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var dayOff models.DayOff
	if err := h.db.First(&dayOff, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "day_off_not_found"})
		return
	}

	dayOff.Active = req.Active
	if err := h.db.Save(&dayOff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_day_off"})
		return
	}

	httpresp.OK(c, dayOff)
}

func (h *DaysOffHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.db.Delete(&models.DayOff{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_day_off"})
		return
	}

	c.Status(http.StatusNoContent)
}
