package usecase

import "github.com/hoteldesk/rate-calendar-service/internal/domain"

type RoomTypeUsecase interface {
	AddRoomType(roomType *domain.RoomTypeConfig) error
	EditRoomType(roomType *domain.RoomTypeConfig) error
	GetRoomTypeByID(roomTypeID string) (*domain.RoomTypeConfig, error)
	ListRoomTypes() ([]*domain.RoomTypeConfig, error)
}

type DefaultRoomTypeUsecase struct {
	RoomTypeRepo domain.RoomTypeRepository
}

func NewDefaultRoomTypeUsecase(roomTypeRepo domain.RoomTypeRepository) *DefaultRoomTypeUsecase {
	return &DefaultRoomTypeUsecase{RoomTypeRepo: roomTypeRepo}
}

func (uc *DefaultRoomTypeUsecase) AddRoomType(roomType *domain.RoomTypeConfig) error {
	return uc.RoomTypeRepo.CreateRoomType(roomType)
}

func (uc *DefaultRoomTypeUsecase) EditRoomType(roomType *domain.RoomTypeConfig) error {
	return uc.RoomTypeRepo.UpdateRoomType(roomType)
}

func (uc *DefaultRoomTypeUsecase) GetRoomTypeByID(roomTypeID string) (*domain.RoomTypeConfig, error) {
	return uc.RoomTypeRepo.GetRoomTypeByID(roomTypeID)
}

func (uc *DefaultRoomTypeUsecase) ListRoomTypes() ([]*domain.RoomTypeConfig, error) {
	return uc.RoomTypeRepo.ListRoomTypes()
}
