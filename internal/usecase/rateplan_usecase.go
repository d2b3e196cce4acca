package usecase

import "github.com/hoteldesk/rate-calendar-service/internal/domain"

type RatePlanUsecase interface {
	AddRatePlan(ratePlan *domain.RatePlanConfig) error
	EditRatePlan(ratePlan *domain.RatePlanConfig) error
	GetRatePlanByID(ratePlanID string) (*domain.RatePlanConfig, error)
	ListRatePlans() ([]*domain.RatePlanConfig, error)
}

type DefaultRatePlanUsecase struct {
	RatePlanRepo domain.RatePlanRepository
}

func NewDefaultRatePlanUsecase(ratePlanRepo domain.RatePlanRepository) *DefaultRatePlanUsecase {
	return &DefaultRatePlanUsecase{RatePlanRepo: ratePlanRepo}
}

func (uc *DefaultRatePlanUsecase) AddRatePlan(ratePlan *domain.RatePlanConfig) error {
	return uc.RatePlanRepo.CreateRatePlan(ratePlan)
}

func (uc *DefaultRatePlanUsecase) EditRatePlan(ratePlan *domain.RatePlanConfig) error {
	return uc.RatePlanRepo.UpdateRatePlan(ratePlan)
}

func (uc *DefaultRatePlanUsecase) GetRatePlanByID(ratePlanID string) (*domain.RatePlanConfig, error) {
	return uc.RatePlanRepo.GetRatePlanByID(ratePlanID)
}

func (uc *DefaultRatePlanUsecase) ListRatePlans() ([]*domain.RatePlanConfig, error) {
	return uc.RatePlanRepo.ListRatePlans()
}
