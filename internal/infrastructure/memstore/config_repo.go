package memstore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
)

type MemoryRoomTypeRepository struct {
	roomTypes map[string]*domain.RoomTypeConfig
	mu        sync.RWMutex
}

func NewMemoryRoomTypeRepository() *MemoryRoomTypeRepository {
	return &MemoryRoomTypeRepository{
		roomTypes: make(map[string]*domain.RoomTypeConfig),
	}
}

func (r *MemoryRoomTypeRepository) CreateRoomType(roomType *domain.RoomTypeConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if roomType.ID == "" {
		roomType.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	roomType.CreatedAt = now
	roomType.UpdatedAt = now

	cloned := *roomType
	r.roomTypes[roomType.ID] = &cloned
	return nil
}

func (r *MemoryRoomTypeRepository) UpdateRoomType(roomType *domain.RoomTypeConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.roomTypes[roomType.ID]
	if !ok {
		return domain.ErrRoomTypeNotFound
	}
	existing.Name = roomType.Name
	existing.Code = roomType.Code
	existing.BaseRate = roomType.BaseRate
	existing.IsActive = roomType.IsActive
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRoomTypeRepository) GetRoomTypeByID(roomTypeID string) (*domain.RoomTypeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roomType, ok := r.roomTypes[roomTypeID]
	if !ok {
		return nil, domain.ErrRoomTypeNotFound
	}
	cloned := *roomType
	return &cloned, nil
}

func (r *MemoryRoomTypeRepository) ListRoomTypes() ([]*domain.RoomTypeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RoomTypeConfig, 0, len(r.roomTypes))
	for _, roomType := range r.roomTypes {
		cloned := *roomType
		result = append(result, &cloned)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

type MemoryRatePlanRepository struct {
	ratePlans map[string]*domain.RatePlanConfig
	mu        sync.RWMutex
}

func NewMemoryRatePlanRepository() *MemoryRatePlanRepository {
	return &MemoryRatePlanRepository{
		ratePlans: make(map[string]*domain.RatePlanConfig),
	}
}

func (r *MemoryRatePlanRepository) CreateRatePlan(ratePlan *domain.RatePlanConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ratePlan.ID == "" {
		ratePlan.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	ratePlan.CreatedAt = now
	ratePlan.UpdatedAt = now

	cloned := *ratePlan
	r.ratePlans[ratePlan.ID] = &cloned
	return nil
}

func (r *MemoryRatePlanRepository) UpdateRatePlan(ratePlan *domain.RatePlanConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.ratePlans[ratePlan.ID]
	if !ok {
		return domain.ErrRatePlanNotFound
	}
	existing.Name = ratePlan.Name
	existing.Code = ratePlan.Code
	existing.BaseRate = ratePlan.BaseRate
	existing.IsActive = ratePlan.IsActive
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRatePlanRepository) GetRatePlanByID(ratePlanID string) (*domain.RatePlanConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratePlan, ok := r.ratePlans[ratePlanID]
	if !ok {
		return nil, domain.ErrRatePlanNotFound
	}
	cloned := *ratePlan
	return &cloned, nil
}

func (r *MemoryRatePlanRepository) ListRatePlans() ([]*domain.RatePlanConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RatePlanConfig, 0, len(r.ratePlans))
	for _, ratePlan := range r.ratePlans {
		cloned := *ratePlan
		result = append(result, &cloned)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}
