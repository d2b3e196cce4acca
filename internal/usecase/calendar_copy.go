package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	publisher "github.com/hoteldesk/rate-calendar-service/internal/infrastructure/kafka"
	calendardto "github.com/hoteldesk/rate-calendar-service/internal/usecase/dto/calendar"
)

// CopyToNextMonth clones every entry of the source month onto the same
// day position of the next month. Day 31 of a 31-day month has no target
// in a 30-day month and is skipped, as is any cell that already has an
// entry in the target month.
func (uc *DefaultCalendarUsecase) CopyToNextMonth(month time.Time, actor string) (*calendardto.CopyMonthResult, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextStart := monthStart.AddDate(0, 1, 0)
	nextMonthDays := nextStart.AddDate(0, 1, -1).Day()

	sourceEntries, err := uc.CalendarRepo.ListEntriesByMonth(monthStart)
	if err != nil {
		return nil, err
	}
	targetEntries, err := uc.CalendarRepo.ListEntriesByMonth(nextStart)
	if err != nil {
		return nil, err
	}
	occupied := make(map[domain.EntryKey]bool, len(targetEntries))
	for _, entry := range targetEntries {
		occupied[entry.Key()] = true
	}

	now := time.Now().UTC()
	var clones []*domain.RateCalendarEntry
	var events []publisher.RateEvent

	for _, source := range sourceEntries {
		dayIndex := source.Date.Day()
		if dayIndex > nextMonthDays {
			continue
		}
		targetDate := nextStart.AddDate(0, 0, dayIndex-1)
		targetKey := domain.EntryKey{
			Date:       targetDate,
			RoomTypeID: source.RoomTypeID,
			RatePlanID: source.RatePlanID,
		}
		if occupied[targetKey] {
			continue
		}

		clone := &domain.RateCalendarEntry{
			ID:             uuid.New().String(),
			RoomTypeID:     source.RoomTypeID,
			RatePlanID:     source.RatePlanID,
			Date:           targetDate,
			Rate:           source.Rate,
			Availability:   source.Availability,
			Restrictions:   domain.CloneRestrictions(source.Restrictions),
			IsOverride:     source.IsOverride,
			OverrideReason: "Copied from " + source.Date.Format("2006-01-02"),
			CreatedAt:      now,
			UpdatedAt:      now,
			UpdatedBy:      actor,
		}
		clones = append(clones, clone)
		events = append(events, rateEventFromEntry(clone, publisher.SourceMonthCopy))
	}

	if err := uc.CalendarRepo.SaveEntries(clones); err != nil {
		return nil, err
	}

	uc.Metrics.RecordMonthCopy(monthStart.Format("2006-01"), len(clones))
	uc.publishRateEvents(events)

	return &calendardto.CopyMonthResult{
		SourceMonth: monthStart,
		Copied:      len(clones),
	}, nil
}
