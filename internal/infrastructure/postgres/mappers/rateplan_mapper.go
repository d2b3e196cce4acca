package mappers

import (
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
)

func ToDomainRoomType(model *models.RoomTypeModel) *domain.RoomTypeConfig {
	return &domain.RoomTypeConfig{
		ID:        model.ID,
		Name:      model.Name,
		Code:      model.Code,
		BaseRate:  model.BaseRate,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMRoomType(roomType *domain.RoomTypeConfig) *models.RoomTypeModel {
	return &models.RoomTypeModel{
		ID:        roomType.ID,
		Name:      roomType.Name,
		Code:      roomType.Code,
		BaseRate:  roomType.BaseRate,
		IsActive:  roomType.IsActive,
		CreatedAt: roomType.CreatedAt,
		UpdatedAt: roomType.UpdatedAt,
	}
}

func ToDomainRatePlan(model *models.RatePlanModel) *domain.RatePlanConfig {
	return &domain.RatePlanConfig{
		ID:        model.ID,
		Name:      model.Name,
		Code:      model.Code,
		BaseRate:  model.BaseRate,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMRatePlan(ratePlan *domain.RatePlanConfig) *models.RatePlanModel {
	return &models.RatePlanModel{
		ID:        ratePlan.ID,
		Name:      ratePlan.Name,
		Code:      ratePlan.Code,
		BaseRate:  ratePlan.BaseRate,
		IsActive:  ratePlan.IsActive,
		CreatedAt: ratePlan.CreatedAt,
		UpdatedAt: ratePlan.UpdatedAt,
	}
}
