package calendarResponse

import (
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	calendardto "github.com/hoteldesk/rate-calendar-service/internal/usecase/dto/calendar"
)

type RestrictionResponse struct {
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
	Value    int    `json:"value,omitempty"`
}

type EntryResponse struct {
	ID             string                `json:"id"`
	RoomTypeID     string                `json:"room_type_id"`
	RatePlanID     string                `json:"rate_plan_id"`
	Date           string                `json:"date"`
	Rate           float64               `json:"rate"`
	Availability   int                   `json:"availability"`
	Restrictions   []RestrictionResponse `json:"restrictions"`
	IsOverride     bool                  `json:"is_override"`
	OverrideReason string                `json:"override_reason,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
	UpdatedBy      string                `json:"updated_by,omitempty"`
}

type EffectiveRateResponse struct {
	Date         string                `json:"date"`
	RoomTypeID   string                `json:"room_type_id"`
	RatePlanID   string                `json:"rate_plan_id"`
	Rate         float64               `json:"rate"`
	Availability int                   `json:"availability"`
	Restrictions []RestrictionResponse `json:"restrictions"`
	IsOverride   bool                  `json:"is_override"`
}

type BulkUpdateResponse struct {
	JobID   string `json:"job_id"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
}

type CopyMonthResponse struct {
	SourceMonth string `json:"source_month"`
	Copied      int    `json:"copied"`
}

type BulkJobResponse struct {
	ID              string   `json:"id"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	RoomTypeIDs     []string `json:"room_type_ids"`
	RatePlanIDs     []string `json:"rate_plan_ids"`
	AdjustmentType  string   `json:"adjustment_type"`
	AdjustmentValue float64  `json:"adjustment_value"`
	Created         int      `json:"created"`
	Updated         int      `json:"updated"`
	Reason          string   `json:"reason"`
	Actor           string   `json:"actor"`
	DurationMs      int64    `json:"duration_ms"`
	CreatedAt       string   `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func FromRestrictions(restrictions []domain.Restriction) []RestrictionResponse {
	result := make([]RestrictionResponse, 0, len(restrictions))
	for _, r := range restrictions {
		result = append(result, RestrictionResponse{
			Type:     string(r.Type),
			IsActive: r.IsActive,
			Value:    r.Value,
		})
	}
	return result
}

func FromEntry(entry *domain.RateCalendarEntry) EntryResponse {
	return EntryResponse{
		ID:             entry.ID,
		RoomTypeID:     entry.RoomTypeID,
		RatePlanID:     entry.RatePlanID,
		Date:           entry.Date.Format("2006-01-02"),
		Rate:           entry.Rate,
		Availability:   entry.Availability,
		Restrictions:   FromRestrictions(entry.Restrictions),
		IsOverride:     entry.IsOverride,
		OverrideReason: entry.OverrideReason,
		CreatedAt:      entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      entry.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedBy:      entry.UpdatedBy,
	}
}

func FromGridCell(cell *calendardto.GridCell) EffectiveRateResponse {
	return EffectiveRateResponse{
		Date:         cell.Date.Format("2006-01-02"),
		RoomTypeID:   cell.RoomTypeID,
		RatePlanID:   cell.RatePlanID,
		Rate:         cell.Rate,
		Availability: cell.Availability,
		Restrictions: FromRestrictions(cell.Restrictions),
		IsOverride:   cell.IsOverride,
	}
}

func FromBulkJob(job *domain.BulkJobLog) BulkJobResponse {
	return BulkJobResponse{
		ID:              job.ID,
		StartDate:       job.StartDate.Format("2006-01-02"),
		EndDate:         job.EndDate.Format("2006-01-02"),
		RoomTypeIDs:     job.RoomTypeIDs,
		RatePlanIDs:     job.RatePlanIDs,
		AdjustmentType:  string(job.AdjustmentType),
		AdjustmentValue: job.AdjustmentValue,
		Created:         job.CreatedCount,
		Updated:         job.UpdatedCount,
		Reason:          job.Reason,
		Actor:           job.Actor,
		DurationMs:      job.DurationMs,
		CreatedAt:       job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
