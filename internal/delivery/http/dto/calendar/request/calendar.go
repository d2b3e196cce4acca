package calendarRequest

type RestrictionPayload struct {
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
	Value    int    `json:"value"`
}

type OverrideRequest struct {
	Date         string               `json:"date" binding:"required"`
	RoomTypeID   string               `json:"room_type_id" binding:"required"`
	RatePlanID   string               `json:"rate_plan_id" binding:"required"`
	Rate         float64              `json:"rate"`
	Availability int                  `json:"availability"`
	Restrictions []RestrictionPayload `json:"restrictions"`
	Reason       string               `json:"reason"`
	Actor        string               `json:"actor"`
}

type BulkUpdateRequest struct {
	StartDate       string               `json:"start_date" binding:"required"`
	EndDate         string               `json:"end_date" binding:"required"`
	RoomTypeIDs     []string             `json:"room_type_ids"`
	RatePlanIDs     []string             `json:"rate_plan_ids"`
	AdjustmentType  string               `json:"adjustment_type"`
	AdjustmentValue float64              `json:"adjustment_value"`
	Restrictions    []RestrictionPayload `json:"restrictions"`
	// Sunday first; omitted means every weekday
	ApplyToWeekdays  []bool `json:"apply_to_weekdays"`
	OverrideExisting bool   `json:"override_existing"`
	Reason           string `json:"reason"`
	Actor            string `json:"actor"`
}

type CopyMonthRequest struct {
	Month string `json:"month" binding:"required"`
	Actor string `json:"actor"`
}
