package domain

import "time"

type RestrictionType string

const (
	RestrictionMinStay  RestrictionType = "min-stay"
	RestrictionMaxStay  RestrictionType = "max-stay"
	RestrictionCTA      RestrictionType = "cta"
	RestrictionCTD      RestrictionType = "ctd"
	RestrictionStopSell RestrictionType = "stop-sell"
)

// Availability seeded into entries created by bulk updates
const DefaultNewEntryAvailability = 10

type Restriction struct {
	Type     RestrictionType
	IsActive bool
	Value    int // nights, only meaningful for min-stay/max-stay
}

type RateCalendarEntry struct {
	ID             string
	RoomTypeID     string
	RatePlanID     string
	Date           time.Time
	Rate           float64
	Availability   int
	Restrictions   []Restriction
	IsOverride     bool
	OverrideReason string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UpdatedBy      string
}

// EntryKey is the natural key of a calendar entry. At most one entry
// may exist per key.
type EntryKey struct {
	Date       time.Time
	RoomTypeID string
	RatePlanID string
}

func (e *RateCalendarEntry) Key() EntryKey {
	return EntryKey{
		Date:       NormalizeDate(e.Date),
		RoomTypeID: e.RoomTypeID,
		RatePlanID: e.RatePlanID,
	}
}

// EffectiveRate is what a calendar cell resolves to: either the stored
// entry or the base-rate fallback when no entry exists.
type EffectiveRate struct {
	Rate         float64
	Availability int
	Restrictions []Restriction
	IsOverride   bool
}

// NormalizeDate truncates a timestamp to midnight UTC. Every date stored
// or looked up in the calendar goes through this.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func CloneRestrictions(list []Restriction) []Restriction {
	if list == nil {
		return nil
	}
	cloned := make([]Restriction, len(list))
	copy(cloned, list)
	return cloned
}

// NormalizeRestrictions collapses duplicate restriction types so at most
// one restriction per type survives, the last occurrence wins. Every write
// path runs incoming restriction lists through this.
func NormalizeRestrictions(list []Restriction) []Restriction {
	if len(list) == 0 {
		return CloneRestrictions(list)
	}
	index := make(map[RestrictionType]int, len(list))
	normalized := make([]Restriction, 0, len(list))
	for _, r := range list {
		if i, ok := index[r.Type]; ok {
			normalized[i] = r
			continue
		}
		index[r.Type] = len(normalized)
		normalized = append(normalized, r)
	}
	return normalized
}

// ToggleRestriction removes the restriction of the given type if present,
// otherwise appends an active one. Used while composing a pending override
// or bulk config, not on persisted entries.
func ToggleRestriction(list []Restriction, restrictionType RestrictionType) []Restriction {
	for i, r := range list {
		if r.Type == restrictionType {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(CloneRestrictions(list), Restriction{Type: restrictionType, IsActive: true})
}

// SetRestrictionValue sets the value of the matching restriction by type.
// No-op if the type is not in the list.
func SetRestrictionValue(list []Restriction, restrictionType RestrictionType, value int) []Restriction {
	updated := CloneRestrictions(list)
	for i, r := range updated {
		if r.Type == restrictionType {
			updated[i].Value = value
		}
	}
	return updated
}
