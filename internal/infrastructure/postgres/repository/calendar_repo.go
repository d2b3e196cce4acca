package repository

import (
	"errors"
	"time"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/mappers"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCalendarRepository struct {
	DB *gorm.DB
}

func NewDefaultCalendarRepository(db *gorm.DB) *DefaultCalendarRepository {
	return &DefaultCalendarRepository{DB: db}
}

func (r *DefaultCalendarRepository) GetEntry(key domain.EntryKey) (*domain.RateCalendarEntry, error) {
	var model models.RateCalendarEntryModel
	err := r.DB.
		Where("date = ? AND room_type_id = ? AND rate_plan_id = ?", key.Date, key.RoomTypeID, key.RatePlanID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return mappers.ToDomainEntry(&model), nil
}

func (r *DefaultCalendarRepository) ListEntriesByDateRange(from, to time.Time, roomTypeIDs, ratePlanIDs []string) ([]*domain.RateCalendarEntry, error) {
	query := r.DB.Where("date BETWEEN ? AND ?", from, to)
	if len(roomTypeIDs) > 0 {
		query = query.Where("room_type_id IN ?", roomTypeIDs)
	}
	if len(ratePlanIDs) > 0 {
		query = query.Where("rate_plan_id IN ?", ratePlanIDs)
	}

	var entryModels []models.RateCalendarEntryModel
	if err := query.Order("date ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*domain.RateCalendarEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = mappers.ToDomainEntry(&entryModels[i])
	}
	return entries, nil
}

func (r *DefaultCalendarRepository) ListEntriesByMonth(month time.Time) ([]*domain.RateCalendarEntry, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextStart := monthStart.AddDate(0, 1, 0)

	var entryModels []models.RateCalendarEntryModel
	err := r.DB.
		Where("date >= ? AND date < ?", monthStart, nextStart).
		Order("date ASC").
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.RateCalendarEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = mappers.ToDomainEntry(&entryModels[i])
	}
	return entries, nil
}

func (r *DefaultCalendarRepository) CreateEntry(entry *domain.RateCalendarEntry) error {
	return r.DB.Create(mappers.ToGORMEntry(entry)).Error
}

func (r *DefaultCalendarRepository) UpdateEntry(entry *domain.RateCalendarEntry) error {
	return r.DB.Save(mappers.ToGORMEntry(entry)).Error
}

func (r *DefaultCalendarRepository) SaveEntries(entries []*domain.RateCalendarEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if err := tx.Save(mappers.ToGORMEntry(entry)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultCalendarRepository) CountEntries() (int64, error) {
	var total int64
	if err := r.DB.Model(&models.RateCalendarEntryModel{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
