package publisher

// RateEvent is published to the rate-events topic for every committed
// calendar mutation. Channel-manager sync consumers key off RoomTypeID.
type RateEvent struct {
	EntryID      string  `json:"entry_id"`
	RoomTypeID   string  `json:"room_type_id"`
	RatePlanID   string  `json:"rate_plan_id"`
	Date         string  `json:"date"`
	Rate         float64 `json:"rate"`
	Availability int     `json:"availability"`
	IsOverride   bool    `json:"is_override"`
	Source       string  `json:"source"`
	UpdatedBy    string  `json:"updated_by"`
}

const (
	SourceManual    = "manual"
	SourceBulk      = "bulk"
	SourceMonthCopy = "month-copy"
)
