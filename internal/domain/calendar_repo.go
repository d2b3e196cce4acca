package domain

import "time"

type CalendarRepository interface {
	GetEntry(key EntryKey) (*RateCalendarEntry, error)
	ListEntriesByDateRange(from, to time.Time, roomTypeIDs, ratePlanIDs []string) ([]*RateCalendarEntry, error)
	ListEntriesByMonth(month time.Time) ([]*RateCalendarEntry, error)
	CreateEntry(entry *RateCalendarEntry) error
	UpdateEntry(entry *RateCalendarEntry) error
	// SaveEntries upserts a batch of entries in one transaction so a bulk
	// update is atomic from the engine's point of view.
	SaveEntries(entries []*RateCalendarEntry) error
	CountEntries() (int64, error)
}
