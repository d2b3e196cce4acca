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

type DefaultRatePlanRepository struct {
	DB *gorm.DB
}

func NewDefaultRatePlanRepository(db *gorm.DB) *DefaultRatePlanRepository {
	return &DefaultRatePlanRepository{DB: db}
}

func (r *DefaultRatePlanRepository) CreateRatePlan(ratePlan *domain.RatePlanConfig) error {
	if ratePlan.ID == "" {
		ratePlan.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	ratePlan.CreatedAt = now
	ratePlan.UpdatedAt = now

	return r.DB.Create(mappers.ToGORMRatePlan(ratePlan)).Error
}

func (r *DefaultRatePlanRepository) UpdateRatePlan(ratePlan *domain.RatePlanConfig) error {
	updateData := map[string]interface{}{
		"name":       ratePlan.Name,
		"code":       ratePlan.Code,
		"base_rate":  ratePlan.BaseRate,
		"is_active":  ratePlan.IsActive,
		"updated_at": time.Now().UTC(),
	}

	return r.DB.Model(&models.RatePlanModel{}).
		Where("id = ?", ratePlan.ID).
		Updates(updateData).Error
}

func (r *DefaultRatePlanRepository) GetRatePlanByID(ratePlanID string) (*domain.RatePlanConfig, error) {
	var model models.RatePlanModel
	if err := r.DB.Where("id = ?", ratePlanID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRatePlanNotFound
		}
		return nil, err
	}

	return mappers.ToDomainRatePlan(&model), nil
}

func (r *DefaultRatePlanRepository) ListRatePlans() ([]*domain.RatePlanConfig, error) {
	var ratePlanModels []models.RatePlanModel
	if err := r.DB.Order("code ASC").Find(&ratePlanModels).Error; err != nil {
		return nil, err
	}

	ratePlans := make([]*domain.RatePlanConfig, len(ratePlanModels))
	for i := range ratePlanModels {
		ratePlans[i] = mappers.ToDomainRatePlan(&ratePlanModels[i])
	}
	return ratePlans, nil
}
