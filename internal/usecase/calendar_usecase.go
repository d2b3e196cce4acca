package usecase

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	publisher "github.com/hoteldesk/rate-calendar-service/internal/infrastructure/kafka"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/metrics"
	calendardto "github.com/hoteldesk/rate-calendar-service/internal/usecase/dto/calendar"
)

type CalendarUsecase interface {
	ResolveEffectiveRate(date time.Time, roomTypeID, ratePlanID string) (*domain.EffectiveRate, error)
	ResolveGrid(input *calendardto.GridInput) ([]*calendardto.GridCell, error)
	ListEntries(from, to time.Time, roomTypeIDs, ratePlanIDs []string) ([]*domain.RateCalendarEntry, error)
	ApplyManualOverride(input *calendardto.ManualOverrideInput) (*domain.RateCalendarEntry, error)
	ApplyBulkUpdate(input *calendardto.BulkUpdateInput) (*calendardto.BulkUpdateResult, error)
	CopyToNextMonth(month time.Time, actor string) (*calendardto.CopyMonthResult, error)
	ListBulkJobs(page, limit int32) ([]*domain.BulkJobLog, int64, error)
}

type DefaultCalendarUsecase struct {
	CalendarRepo domain.CalendarRepository
	RoomTypeRepo domain.RoomTypeRepository
	RatePlanRepo domain.RatePlanRepository
	BulkJobRepo  domain.BulkJobRepository
	Publisher    domain.PublisherPort
	Metrics      *metrics.CalendarMetrics
	RateTopic    string
}

func NewDefaultCalendarUsecase(
	calendarRepo domain.CalendarRepository,
	roomTypeRepo domain.RoomTypeRepository,
	ratePlanRepo domain.RatePlanRepository,
	bulkJobRepo domain.BulkJobRepository,
	pub domain.PublisherPort,
	calendarMetrics *metrics.CalendarMetrics,
	rateTopic string) *DefaultCalendarUsecase {

	return &DefaultCalendarUsecase{
		CalendarRepo: calendarRepo,
		RoomTypeRepo: roomTypeRepo,
		RatePlanRepo: ratePlanRepo,
		BulkJobRepo:  bulkJobRepo,
		Publisher:    pub,
		Metrics:      calendarMetrics,
		RateTopic:    rateTopic,
	}
}

// ResolveEffectiveRate returns the stored entry for the cell verbatim, or
// the base-rate fallback when no entry exists. Total over any input:
// unknown room types and rate plans resolve to rate 0.
func (uc *DefaultCalendarUsecase) ResolveEffectiveRate(date time.Time, roomTypeID, ratePlanID string) (*domain.EffectiveRate, error) {
	key := domain.EntryKey{
		Date:       domain.NormalizeDate(date),
		RoomTypeID: roomTypeID,
		RatePlanID: ratePlanID,
	}

	entry, err := uc.CalendarRepo.GetEntry(key)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			return nil, err
		}
		return &domain.EffectiveRate{
			Rate:         uc.resolveBaseRate(roomTypeID, ratePlanID),
			Availability: 0,
			Restrictions: []domain.Restriction{},
			IsOverride:   false,
		}, nil
	}

	return &domain.EffectiveRate{
		Rate:         entry.Rate,
		Availability: entry.Availability,
		Restrictions: domain.CloneRestrictions(entry.Restrictions),
		IsOverride:   entry.IsOverride,
	}, nil
}

// ResolveGrid resolves a whole range in one pass over a single range query.
func (uc *DefaultCalendarUsecase) ResolveGrid(input *calendardto.GridInput) ([]*calendardto.GridCell, error) {
	from := domain.NormalizeDate(input.From)
	to := domain.NormalizeDate(input.To)

	entries, err := uc.CalendarRepo.ListEntriesByDateRange(from, to, input.RoomTypeIDs, input.RatePlanIDs)
	if err != nil {
		return nil, err
	}
	byKey := make(map[domain.EntryKey]*domain.RateCalendarEntry, len(entries))
	for _, entry := range entries {
		byKey[entry.Key()] = entry
	}

	baseRates := make(map[[2]string]float64)
	cells := make([]*calendardto.GridCell, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, roomTypeID := range input.RoomTypeIDs {
			for _, ratePlanID := range input.RatePlanIDs {
				cell := &calendardto.GridCell{
					Date:       day,
					RoomTypeID: roomTypeID,
					RatePlanID: ratePlanID,
				}
				key := domain.EntryKey{Date: day, RoomTypeID: roomTypeID, RatePlanID: ratePlanID}
				if entry, ok := byKey[key]; ok {
					cell.Rate = entry.Rate
					cell.Availability = entry.Availability
					cell.Restrictions = domain.CloneRestrictions(entry.Restrictions)
					cell.IsOverride = entry.IsOverride
				} else {
					pair := [2]string{roomTypeID, ratePlanID}
					base, ok := baseRates[pair]
					if !ok {
						base = uc.resolveBaseRate(roomTypeID, ratePlanID)
						baseRates[pair] = base
					}
					cell.Rate = base
					cell.Restrictions = []domain.Restriction{}
				}
				cells = append(cells, cell)
			}
		}
	}

	return cells, nil
}

func (uc *DefaultCalendarUsecase) ListEntries(from, to time.Time, roomTypeIDs, ratePlanIDs []string) ([]*domain.RateCalendarEntry, error) {
	return uc.CalendarRepo.ListEntriesByDateRange(domain.NormalizeDate(from), domain.NormalizeDate(to), roomTypeIDs, ratePlanIDs)
}

func (uc *DefaultCalendarUsecase) ListBulkJobs(page, limit int32) ([]*domain.BulkJobLog, int64, error) {
	return uc.BulkJobRepo.ListBulkJobs(page, limit)
}

// resolveBaseRate: rate plan base rate wins over room type base rate,
// missing config resolves to 0. A lookup miss is a documented fallback,
// not an error.
func (uc *DefaultCalendarUsecase) resolveBaseRate(roomTypeID, ratePlanID string) float64 {
	if ratePlan, err := uc.RatePlanRepo.GetRatePlanByID(ratePlanID); err == nil && ratePlan.BaseRate != nil {
		return *ratePlan.BaseRate
	}
	if roomType, err := uc.RoomTypeRepo.GetRoomTypeByID(roomTypeID); err == nil && roomType.BaseRate != nil {
		return *roomType.BaseRate
	}
	return 0
}

func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}

func (uc *DefaultCalendarUsecase) publishRateEvents(events []publisher.RateEvent) {
	if uc.Publisher == nil || len(events) == 0 {
		return
	}
	msgs, err := publisher.EncodeRateEvents(events)
	if err != nil {
		log.Printf("failed to encode rate events: %v", err)
		return
	}
	if err := uc.Publisher.Publish(uc.RateTopic, msgs...); err != nil {
		log.Printf("failed to publish rate events: %v", err)
	}
}

func rateEventFromEntry(entry *domain.RateCalendarEntry, source string) publisher.RateEvent {
	return publisher.RateEvent{
		EntryID:      entry.ID,
		RoomTypeID:   entry.RoomTypeID,
		RatePlanID:   entry.RatePlanID,
		Date:         entry.Date.Format("2006-01-02"),
		Rate:         entry.Rate,
		Availability: entry.Availability,
		IsOverride:   entry.IsOverride,
		Source:       source,
		UpdatedBy:    entry.UpdatedBy,
	}
}
