package models

import "time"

type RatePlanModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string
	Code      string `gorm:"uniqueIndex"`
	BaseRate  *float64
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RatePlanModel) TableName() string {
	return "rate_plans"
}
