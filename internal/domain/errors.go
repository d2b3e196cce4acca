package domain

import "errors"

var (
	ErrEntryNotFound       = errors.New("calendar entry not found")
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrRatePlanNotFound    = errors.New("rate plan not found")
	ErrInvalidRate         = errors.New("rate must be non-negative")
	ErrInvalidAvailability = errors.New("availability must be non-negative")
	ErrNoRoomTypes         = errors.New("at least one room type is required")
	ErrNoRatePlans         = errors.New("at least one rate plan is required")
	ErrBlankReason         = errors.New("reason is required")
	ErrInvalidAdjustment   = errors.New("adjustment type must be fixed or percentage")
)
