package models

import (
	"time"

	"gorm.io/datatypes"
)

type RateCalendarEntryModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	RoomTypeID     string    `gorm:"type:uuid;index:idx_calendar_natural_key,unique"`
	RatePlanID     string    `gorm:"type:uuid;index:idx_calendar_natural_key,unique"`
	Date           time.Time `gorm:"index:idx_calendar_natural_key,unique;index:idx_calendar_date"`
	Rate           float64
	Availability   int
	Restrictions   datatypes.JSON `gorm:"type:jsonb"`
	IsOverride     bool           `gorm:"default:false"`
	OverrideReason string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UpdatedBy      string
}

func (RateCalendarEntryModel) TableName() string {
	return "rate_calendar_entries"
}
