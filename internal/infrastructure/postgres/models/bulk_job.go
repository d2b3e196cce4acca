package models

import (
	"time"

	"gorm.io/datatypes"
)

type BulkJobModel struct {
	ID              string `gorm:"primaryKey"`
	StartDate       time.Time
	EndDate         time.Time
	RoomTypeIDs     datatypes.JSON `gorm:"type:jsonb"`
	RatePlanIDs     datatypes.JSON `gorm:"type:jsonb"`
	AdjustmentType  string
	AdjustmentValue float64
	CreatedCount    int
	UpdatedCount    int
	Reason          string
	Actor           string
	DurationMs      int64
	CreatedAt       time.Time `gorm:"index:idx_bulk_jobs_created_at"`
}

func (BulkJobModel) TableName() string {
	return "bulk_update_jobs"
}
