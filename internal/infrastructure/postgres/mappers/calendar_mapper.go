package mappers

import (
	"encoding/json"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
)

func ToDomainEntry(model *models.RateCalendarEntryModel) *domain.RateCalendarEntry {
	var restrictions []domain.Restriction
	if len(model.Restrictions) > 0 {
		// a corrupt jsonb column yields an entry with no restrictions
		_ = json.Unmarshal(model.Restrictions, &restrictions)
	}

	return &domain.RateCalendarEntry{
		ID:             model.ID,
		RoomTypeID:     model.RoomTypeID,
		RatePlanID:     model.RatePlanID,
		Date:           domain.NormalizeDate(model.Date),
		Rate:           model.Rate,
		Availability:   model.Availability,
		Restrictions:   restrictions,
		IsOverride:     model.IsOverride,
		OverrideReason: model.OverrideReason,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
		UpdatedBy:      model.UpdatedBy,
	}
}

func ToGORMEntry(entry *domain.RateCalendarEntry) *models.RateCalendarEntryModel {
	restrictions, _ := json.Marshal(entry.Restrictions)

	return &models.RateCalendarEntryModel{
		ID:             entry.ID,
		RoomTypeID:     entry.RoomTypeID,
		RatePlanID:     entry.RatePlanID,
		Date:           domain.NormalizeDate(entry.Date),
		Rate:           entry.Rate,
		Availability:   entry.Availability,
		Restrictions:   restrictions,
		IsOverride:     entry.IsOverride,
		OverrideReason: entry.OverrideReason,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
		UpdatedBy:      entry.UpdatedBy,
	}
}
