package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/mappers"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRoomTypeRepository struct {
	DB *gorm.DB
}

func NewDefaultRoomTypeRepository(db *gorm.DB) *DefaultRoomTypeRepository {
	return &DefaultRoomTypeRepository{DB: db}
}

func (r *DefaultRoomTypeRepository) CreateRoomType(roomType *domain.RoomTypeConfig) error {
	if roomType.ID == "" {
		roomType.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	roomType.CreatedAt = now
	roomType.UpdatedAt = now

	return r.DB.Create(mappers.ToGORMRoomType(roomType)).Error
}

func (r *DefaultRoomTypeRepository) UpdateRoomType(roomType *domain.RoomTypeConfig) error {
	updateData := map[string]interface{}{
		"name":       roomType.Name,
		"code":       roomType.Code,
		"base_rate":  roomType.BaseRate,
		"is_active":  roomType.IsActive,
		"updated_at": time.Now().UTC(),
	}

	return r.DB.Model(&models.RoomTypeModel{}).
		Where("id = ?", roomType.ID).
		Updates(updateData).Error
}

func (r *DefaultRoomTypeRepository) GetRoomTypeByID(roomTypeID string) (*domain.RoomTypeConfig, error) {
	var model models.RoomTypeModel
	if err := r.DB.Where("id = ?", roomTypeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, err
	}

	return mappers.ToDomainRoomType(&model), nil
}

func (r *DefaultRoomTypeRepository) ListRoomTypes() ([]*domain.RoomTypeConfig, error) {
	var roomTypeModels []models.RoomTypeModel
	if err := r.DB.Order("code ASC").Find(&roomTypeModels).Error; err != nil {
		return nil, err
	}

	roomTypes := make([]*domain.RoomTypeConfig, len(roomTypeModels))
	for i := range roomTypeModels {
		roomTypes[i] = mappers.ToDomainRoomType(&roomTypeModels[i])
	}
	return roomTypes, nil
}
