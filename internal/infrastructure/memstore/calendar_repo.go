package memstore

import (
	"sync"
	"time"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
)

// MemoryCalendarRepository keeps the calendar in a map keyed by natural
// key. Entries are cloned on the way in and out so callers never alias
// stored state. Used by the tests and by DSN-less runs.
type MemoryCalendarRepository struct {
	entries map[domain.EntryKey]*domain.RateCalendarEntry
	mu      sync.RWMutex
}

func NewMemoryCalendarRepository() *MemoryCalendarRepository {
	return &MemoryCalendarRepository{
		entries: make(map[domain.EntryKey]*domain.RateCalendarEntry),
	}
}

func cloneEntry(entry *domain.RateCalendarEntry) *domain.RateCalendarEntry {
	cloned := *entry
	cloned.Restrictions = domain.CloneRestrictions(entry.Restrictions)
	return &cloned
}

func (r *MemoryCalendarRepository) GetEntry(key domain.EntryKey) (*domain.RateCalendarEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return cloneEntry(entry), nil
}

func (r *MemoryCalendarRepository) ListEntriesByDateRange(from, to time.Time, roomTypeIDs, ratePlanIDs []string) ([]*domain.RateCalendarEntry, error) {
	roomTypeSet := toSet(roomTypeIDs)
	ratePlanSet := toSet(ratePlanIDs)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RateCalendarEntry, 0)
	for key, entry := range r.entries {
		if key.Date.Before(from) || key.Date.After(to) {
			continue
		}
		if len(roomTypeSet) > 0 && !roomTypeSet[key.RoomTypeID] {
			continue
		}
		if len(ratePlanSet) > 0 && !ratePlanSet[key.RatePlanID] {
			continue
		}
		result = append(result, cloneEntry(entry))
	}
	return result, nil
}

func (r *MemoryCalendarRepository) ListEntriesByMonth(month time.Time) ([]*domain.RateCalendarEntry, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextStart := monthStart.AddDate(0, 1, 0)

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RateCalendarEntry, 0)
	for key, entry := range r.entries {
		if key.Date.Before(monthStart) || !key.Date.Before(nextStart) {
			continue
		}
		result = append(result, cloneEntry(entry))
	}
	return result, nil
}

func (r *MemoryCalendarRepository) CreateEntry(entry *domain.RateCalendarEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Key()] = cloneEntry(entry)
	return nil
}

func (r *MemoryCalendarRepository) UpdateEntry(entry *domain.RateCalendarEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Key()] = cloneEntry(entry)
	return nil
}

func (r *MemoryCalendarRepository) SaveEntries(entries []*domain.RateCalendarEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		r.entries[entry.Key()] = cloneEntry(entry)
	}
	return nil
}

func (r *MemoryCalendarRepository) CountEntries() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.entries)), nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
