package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	publisher "github.com/hoteldesk/rate-calendar-service/internal/infrastructure/kafka"
	calendardto "github.com/hoteldesk/rate-calendar-service/internal/usecase/dto/calendar"
)

// ApplyManualOverride upserts exactly one calendar entry. A failed
// validation aborts with no mutation at all.
func (uc *DefaultCalendarUsecase) ApplyManualOverride(input *calendardto.ManualOverrideInput) (*domain.RateCalendarEntry, error) {
	if input.Rate < 0 {
		uc.Metrics.RecordValidationFailure("manual_override")
		return nil, domain.ErrInvalidRate
	}
	if input.Availability < 0 {
		uc.Metrics.RecordValidationFailure("manual_override")
		return nil, domain.ErrInvalidAvailability
	}

	key := domain.EntryKey{
		Date:       domain.NormalizeDate(input.Date),
		RoomTypeID: input.RoomTypeID,
		RatePlanID: input.RatePlanID,
	}
	now := time.Now().UTC()

	entry, err := uc.CalendarRepo.GetEntry(key)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			return nil, err
		}
		entry = &domain.RateCalendarEntry{
			ID:             uuid.New().String(),
			RoomTypeID:     input.RoomTypeID,
			RatePlanID:     input.RatePlanID,
			Date:           key.Date,
			Rate:           input.Rate,
			Availability:   input.Availability,
			Restrictions:   domain.NormalizeRestrictions(input.Restrictions),
			IsOverride:     true,
			OverrideReason: strings.TrimSpace(input.Reason),
			CreatedAt:      now,
			UpdatedAt:      now,
			UpdatedBy:      input.Actor,
		}
		if err := uc.CalendarRepo.CreateEntry(entry); err != nil {
			return nil, err
		}
	} else {
		// CreatedAt stays untouched; isOverride never reverts
		entry.Rate = input.Rate
		entry.Availability = input.Availability
		entry.Restrictions = domain.NormalizeRestrictions(input.Restrictions)
		entry.IsOverride = true
		entry.OverrideReason = strings.TrimSpace(input.Reason)
		entry.UpdatedAt = now
		entry.UpdatedBy = input.Actor
		if err := uc.CalendarRepo.UpdateEntry(entry); err != nil {
			return nil, err
		}
	}

	uc.Metrics.RecordOverrideApplied(input.RoomTypeID, input.RatePlanID)
	uc.publishRateEvents([]publisher.RateEvent{rateEventFromEntry(entry, publisher.SourceManual)})

	return entry, nil
}
