package postgres

import (
	"log"

	"github.com/hoteldesk/rate-calendar-service/internal/config"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RateConfig) *gorm.DB {
	dsn := cfg.RateDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.RoomTypeModel{}, &models.RatePlanModel{}, &models.RateCalendarEntryModel{}, &models.BulkJobModel{})

	return db
}
