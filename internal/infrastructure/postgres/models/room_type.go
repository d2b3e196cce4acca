package models

import "time"

type RoomTypeModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string
	Code      string `gorm:"uniqueIndex"`
	BaseRate  *float64
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoomTypeModel) TableName() string {
	return "room_types"
}
