package repository

import (
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/mappers"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBulkJobRepository struct {
	DB *gorm.DB
}

func NewDefaultBulkJobRepository(db *gorm.DB) *DefaultBulkJobRepository {
	return &DefaultBulkJobRepository{DB: db}
}

func (r *DefaultBulkJobRepository) SaveBulkJob(job *domain.BulkJobLog) error {
	return r.DB.Create(mappers.ToGORMBulkJob(job)).Error
}

func (r *DefaultBulkJobRepository) ListBulkJobs(page, limit int32) ([]*domain.BulkJobLog, int64, error) {
	var total int64
	r.DB.Model(&models.BulkJobModel{}).Count(&total)

	offset := (page - 1) * limit

	var jobModels []models.BulkJobModel
	if err := r.DB.Offset(int(offset)).Limit(int(limit)).Order("created_at DESC").Find(&jobModels).Error; err != nil {
		return nil, 0, err
	}

	jobs := make([]*domain.BulkJobLog, len(jobModels))
	for i := range jobModels {
		jobs[i] = mappers.ToDomainBulkJob(&jobModels[i])
	}

	return jobs, total, nil
}
