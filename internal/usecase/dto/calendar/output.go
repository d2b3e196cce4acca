package calendardto

import (
	"time"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
)

type BulkUpdateResult struct {
	JobID   string
	Created int
	Updated int
}

type CopyMonthResult struct {
	SourceMonth time.Time
	Copied      int
}

// GridCell is one resolved (date, room type, rate plan) cell.
type GridCell struct {
	Date       time.Time
	RoomTypeID string
	RatePlanID string
	domain.EffectiveRate
}
