package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studiohair/salon-scheduler/internal/config"
	"github.com/studiohair/salon-scheduler/internal/models"
)

var weekdays = []string{
	"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado",
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.SalonProfile{},
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.BusinessHours{},
		&models.DayOff{},
		&models.NotificationSettings{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaults(db)

	return db
}

// seedDefaults guarantees the singleton config rows exist so the
// settings screens always have something to load.
func seedDefaults(db *gorm.DB) {
	var count int64

	db.Model(&models.BusinessHours{}).Count(&count)
	if count == 0 {
		rows := make([]models.BusinessHours, 0, len(weekdays))
		for _, day := range weekdays {
			rows = append(rows, models.BusinessHours{
				Weekday: day,
				Active:  day != "domingo",
				Open:    "09:00",
				Close:   "18:00",
			})
		}
		db.Create(&rows)
	}

	db.Model(&models.NotificationSettings{}).Count(&count)
	if count == 0 {
		db.Create(&models.NotificationSettings{
			Active:      true,
			Lead:        "01:00",
			LeadMinutes: 60,
		})
	}

	db.Model(&models.SalonProfile{}).Count(&count)
	if count == 0 {
		db.Create(&models.SalonProfile{
			Name:     "Studio Hair",
			Timezone: "America/Sao_Paulo",
		})
	}
}
