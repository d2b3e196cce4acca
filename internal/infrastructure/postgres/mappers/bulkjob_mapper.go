package mappers

import (
	"encoding/json"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/postgres/models"
)

func ToDomainBulkJob(model *models.BulkJobModel) *domain.BulkJobLog {
	var roomTypeIDs, ratePlanIDs []string
	_ = json.Unmarshal(model.RoomTypeIDs, &roomTypeIDs)
	_ = json.Unmarshal(model.RatePlanIDs, &ratePlanIDs)

	return &domain.BulkJobLog{
		ID:              model.ID,
		StartDate:       model.StartDate,
		EndDate:         model.EndDate,
		RoomTypeIDs:     roomTypeIDs,
		RatePlanIDs:     ratePlanIDs,
		AdjustmentType:  domain.AdjustmentType(model.AdjustmentType),
		AdjustmentValue: model.AdjustmentValue,
		CreatedCount:    model.CreatedCount,
		UpdatedCount:    model.UpdatedCount,
		Reason:          model.Reason,
		Actor:           model.Actor,
		DurationMs:      model.DurationMs,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMBulkJob(job *domain.BulkJobLog) *models.BulkJobModel {
	roomTypeIDs, _ := json.Marshal(job.RoomTypeIDs)
	ratePlanIDs, _ := json.Marshal(job.RatePlanIDs)

	return &models.BulkJobModel{
		ID:              job.ID,
		StartDate:       job.StartDate,
		EndDate:         job.EndDate,
		RoomTypeIDs:     roomTypeIDs,
		RatePlanIDs:     ratePlanIDs,
		AdjustmentType:  string(job.AdjustmentType),
		AdjustmentValue: job.AdjustmentValue,
		CreatedCount:    job.CreatedCount,
		UpdatedCount:    job.UpdatedCount,
		Reason:          job.Reason,
		Actor:           job.Actor,
		DurationMs:      job.DurationMs,
		CreatedAt:       job.CreatedAt,
	}
}
