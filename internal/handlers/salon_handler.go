package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiohair/salon-scheduler/internal/httpresp"
	"github.com/studiohair/salon-scheduler/internal/media"
	"github.com/studiohair/salon-scheduler/internal/models"
	"github.com/studiohair/salon-scheduler/internal/timezone"
)

type SalonHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewSalonHandler(db *gorm.DB, uploader *media.Uploader) *SalonHandler {
	return &SalonHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type UpdateSalonRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

// --------- Handlers ---------

func (h *SalonHandler) Get(c *gin.Context) {
	var salon models.SalonProfile
	if err := h.db.First(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_salon"})
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var salon models.SalonProfile
	if err := h.db.First(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_salon"})
		return
	}

	if req.Name != nil {
		salon.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		salon.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		salon.Address = strings.TrimSpace(*req.Address)
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_timezone",
				"message": "Fuso horário desconhecido: " + *req.Timezone,
			})
			return
		}
		salon.Timezone = *req.Timezone
	}

	if err := h.db.Save(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_salon"})
		return
	}

	httpresp.OK(c, salon)
}

// UploadLogo recebe multipart "logo" e troca a logo do salão.
func (h *SalonHandler) UploadLogo(c *gin.Context) {
	var salon models.SalonProfile
	if err := h.db.First(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_load_salon"})
		return
	}

	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_logo"})
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), file, header, "salon")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed_to_upload_logo",
			"details": err.Error(),
		})
		return
	}

	salon.LogoURL = url
	if err := h.db.Save(&salon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_salon"})
		return
	}

	httpresp.OK(c, salon)
}
