package calendardto

import (
	"time"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
)

type ManualOverrideInput struct {
	Date         time.Time
	RoomTypeID   string
	RatePlanID   string
	Rate         float64
	Availability int
	Restrictions []domain.Restriction
	Reason       string
	Actor        string
}

type BulkUpdateInput struct {
	StartDate       time.Time
	EndDate         time.Time
	RoomTypeIDs     []string
	RatePlanIDs     []string
	AdjustmentType  domain.AdjustmentType
	AdjustmentValue float64
	Restrictions    []domain.Restriction
	// ApplyToWeekdays is indexed by weekday, Sunday = 0
	ApplyToWeekdays  [7]bool
	OverrideExisting bool
	Reason           string
	Actor            string
}

type GridInput struct {
	From        time.Time
	To          time.Time
	RoomTypeIDs []string
	RatePlanIDs []string
}
