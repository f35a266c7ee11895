package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiohair/salon-scheduler/internal/httpresp"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/timeutil"
)

type NotificationSettingsHandler struct {
	db *gorm.DB
}

func NewNotificationSettingsHandler(db *gorm.DB) *NotificationSettingsHandler {
	return &NotificationSettingsHandler{db: db}
}

// --------- Requests ---------

type UpdateNotificationSettingsRequest struct {
	Active bool   `json:"active"`
	Lead   string `json:"lead" binding:"required"`
}

// --------- Handlers ---------

func (h *NotificationSettingsHandler) Get(c *gin.Context) {
	var settings models.NotificationSettings
	if err := h.db.First(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_settings"})
		return
	}

	httpresp.OK(c, settings)
}

// Update grava a antecedência do lembrete como "HH:MM" e em minutos.
func (h *NotificationSettingsHandler) Update(c *gin.Context) {
	var req UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	leadMinutes, err := timeutil.ToMinutes(req.Lead)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_lead",
			"message": "Informe a antecedência no formato HH:MM.",
		})
		return
	}

	var settings models.NotificationSettings
	if err := h.db.First(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_settings"})
		return
	}

	settings.Active = req.Active
	settings.Lead = req.Lead
	settings.LeadMinutes = leadMinutes

	if err := h.db.Save(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_settings"})
		return
	}

	httpresp.OK(c, settings)
}
