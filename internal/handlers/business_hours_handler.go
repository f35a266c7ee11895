package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiohair/salon-scheduler/internal/httpresp"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

type BusinessHoursHandler struct {
	db *gorm.DB
}

func NewBusinessHoursHandler(db *gorm.DB) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db}
}

// --------- Requests ---------

type DayHoursRequest struct {
	Weekday string `json:"weekday" binding:"required"`
	Active  bool   `json:"active"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type UpdateBusinessHoursRequest struct {
	Days []DayHoursRequest `json:"days" binding:"required,dive"`
}

// --------- Handlers ---------

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	var hours []models.BusinessHours
	if err := h.db.Order("id ASC").Find(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_business_hours"})
		return
	}

	httpresp.List(c, hours)
}

// Update recebe o conjunto semanal completo e grava dia a dia.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	var req UpdateBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, day := range req.Days {
		if !timeutil.IsValidWeekday(day.Weekday) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_weekday",
				"message": "Dia da semana desconhecido: " + day.Weekday,
			})
			return
		}
		if day.Active {
			open, err1 := timeutil.ToMinutes(day.Open)
			close, err2 := timeutil.ToMinutes(day.Close)
			if err1 != nil || err2 != nil || open >= close {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "invalid_hours",
					"message": "Horário inválido para " + day.Weekday + ": abertura deve vir antes do fechamento.",
				})
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, day := range req.Days {
			var row models.BusinessHours
			if err := tx.Where("weekday = ?", day.Weekday).First(&row).Error; err != nil {
				if err != gorm.ErrRecordNotFound {
					return err
				}
				row = models.BusinessHours{Weekday: day.Weekday}
			}

			row.Active = day.Active
			row.Open = day.Open
			row.Close = day.Close

			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_business_hours"})
		return
	}

	h.Get(c)
}
