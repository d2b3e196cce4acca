package domain

import "time"

// RoomTypeConfig and RatePlanConfig are the configuration entities the
// calendar resolves base rates against. BaseRate is optional: a rate plan
// without one falls back to the room type, then to zero.

type RoomTypeConfig struct {
	ID        string
	Name      string
	Code      string
	BaseRate  *float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RatePlanConfig struct {
	ID        string
	Name      string
	Code      string
	BaseRate  *float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoomTypeRepository interface {
	CreateRoomType(roomType *RoomTypeConfig) error
	UpdateRoomType(roomType *RoomTypeConfig) error
	GetRoomTypeByID(roomTypeID string) (*RoomTypeConfig, error)
	ListRoomTypes() ([]*RoomTypeConfig, error)
}

type RatePlanRepository interface {
	CreateRatePlan(ratePlan *RatePlanConfig) error
	UpdateRatePlan(ratePlan *RatePlanConfig) error
	GetRatePlanByID(ratePlanID string) (*RatePlanConfig, error)
	ListRatePlans() ([]*RatePlanConfig, error)
}
