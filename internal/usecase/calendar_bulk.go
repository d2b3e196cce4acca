package usecase

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	publisher "github.com/hoteldesk/rate-calendar-service/internal/infrastructure/kafka"
	calendardto "github.com/hoteldesk/rate-calendar-service/internal/usecase/dto/calendar"
	"github.com/jaevor/go-nanoid"
)

// ApplyBulkUpdate sweeps the cartesian product of the date range (weekday
// filtered), room types and rate plans. Existing non-override entries are
// adjusted off their current rate; existing overrides are skipped unless
// OverrideExisting is set; missing cells are created off the base rate with
// the default availability seed. The whole batch persists in one write.
func (uc *DefaultCalendarUsecase) ApplyBulkUpdate(input *calendardto.BulkUpdateInput) (*calendardto.BulkUpdateResult, error) {
	startedAt := time.Now()

	if err := validateBulkInput(input); err != nil {
		uc.Metrics.RecordValidationFailure("bulk_update")
		return nil, err
	}

	startDate := domain.NormalizeDate(input.StartDate)
	endDate := domain.NormalizeDate(input.EndDate)

	existing, err := uc.CalendarRepo.ListEntriesByDateRange(startDate, endDate, input.RoomTypeIDs, input.RatePlanIDs)
	if err != nil {
		return nil, err
	}
	byKey := make(map[domain.EntryKey]*domain.RateCalendarEntry, len(existing))
	for _, entry := range existing {
		byKey[entry.Key()] = entry
	}

	now := time.Now().UTC()
	reason := strings.TrimSpace(input.Reason)
	restrictions := domain.NormalizeRestrictions(input.Restrictions)
	baseRates := make(map[[2]string]float64)

	var toPersist []*domain.RateCalendarEntry
	var events []publisher.RateEvent
	created, updated := 0, 0

	for _, roomTypeID := range input.RoomTypeIDs {
		for _, ratePlanID := range input.RatePlanIDs {
			for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
				if !input.ApplyToWeekdays[int(day.Weekday())] {
					continue
				}

				key := domain.EntryKey{Date: day, RoomTypeID: roomTypeID, RatePlanID: ratePlanID}
				if entry, ok := byKey[key]; ok {
					if entry.IsOverride && !input.OverrideExisting {
						continue
					}
					entry.Rate = adjustRate(entry.Rate, input.AdjustmentType, input.AdjustmentValue)
					if len(restrictions) > 0 {
						entry.Restrictions = domain.CloneRestrictions(restrictions)
					}
					entry.IsOverride = true
					entry.OverrideReason = reason
					entry.UpdatedAt = now
					entry.UpdatedBy = input.Actor
					toPersist = append(toPersist, entry)
					events = append(events, rateEventFromEntry(entry, publisher.SourceBulk))
					updated++
					continue
				}

				pair := [2]string{roomTypeID, ratePlanID}
				base, ok := baseRates[pair]
				if !ok {
					base = uc.resolveBaseRate(roomTypeID, ratePlanID)
					baseRates[pair] = base
				}
				entry := &domain.RateCalendarEntry{
					ID:             uuid.New().String(),
					RoomTypeID:     roomTypeID,
					RatePlanID:     ratePlanID,
					Date:           day,
					Rate:           adjustRate(base, input.AdjustmentType, input.AdjustmentValue),
					Availability:   domain.DefaultNewEntryAvailability,
					Restrictions:   domain.CloneRestrictions(restrictions),
					IsOverride:     true,
					OverrideReason: reason,
					CreatedAt:      now,
					UpdatedAt:      now,
					UpdatedBy:      input.Actor,
				}
				byKey[key] = entry
				toPersist = append(toPersist, entry)
				events = append(events, rateEventFromEntry(entry, publisher.SourceBulk))
				created++
			}
		}
	}

	if err := uc.CalendarRepo.SaveEntries(toPersist); err != nil {
		return nil, err
	}

	duration := time.Since(startedAt)
	jobID, err := uc.recordBulkJob(input, startDate, endDate, created, updated, reason, duration)
	if err != nil {
		log.Printf("failed to record bulk job: %v", err)
	}

	uc.Metrics.RecordBulkUpdate(string(input.AdjustmentType), created, updated, duration.Seconds())
	uc.publishRateEvents(events)

	return &calendardto.BulkUpdateResult{
		JobID:   jobID,
		Created: created,
		Updated: updated,
	}, nil
}

func validateBulkInput(input *calendardto.BulkUpdateInput) error {
	if len(input.RoomTypeIDs) == 0 {
		return domain.ErrNoRoomTypes
	}
	if len(input.RatePlanIDs) == 0 {
		return domain.ErrNoRatePlans
	}
	if strings.TrimSpace(input.Reason) == "" {
		return domain.ErrBlankReason
	}
	if input.AdjustmentType != domain.AdjustmentFixed && input.AdjustmentType != domain.AdjustmentPercentage {
		return domain.ErrInvalidAdjustment
	}
	return nil
}

// adjustRate applies the bulk adjustment to the current rate, rounded to
// 2 decimals. Rates never go below zero.
func adjustRate(current float64, adjustmentType domain.AdjustmentType, value float64) float64 {
	var next float64
	switch adjustmentType {
	case domain.AdjustmentPercentage:
		next = current * (1 + value/100)
	case domain.AdjustmentFixed:
		next = current + value
	default:
		next = current
	}
	if next < 0 {
		next = 0
	}
	return roundRate(next)
}

func (uc *DefaultCalendarUsecase) recordBulkJob(
	input *calendardto.BulkUpdateInput,
	startDate, endDate time.Time,
	created, updated int,
	reason string,
	duration time.Duration) (string, error) {

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return "", err
	}
	job := &domain.BulkJobLog{
		ID:              idGenerator(),
		StartDate:       startDate,
		EndDate:         endDate,
		RoomTypeIDs:     input.RoomTypeIDs,
		RatePlanIDs:     input.RatePlanIDs,
		AdjustmentType:  input.AdjustmentType,
		AdjustmentValue: input.AdjustmentValue,
		CreatedCount:    created,
		UpdatedCount:    updated,
		Reason:          reason,
		Actor:           input.Actor,
		DurationMs:      duration.Milliseconds(),
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.BulkJobRepo.SaveBulkJob(job); err != nil {
		return "", err
	}
	return job.ID, nil
}
