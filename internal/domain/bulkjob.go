package domain

import "time"

type AdjustmentType string

const (
	AdjustmentFixed      AdjustmentType = "fixed"
	AdjustmentPercentage AdjustmentType = "percentage"
)

// BulkJobLog is the audit record written for every bulk update run.
type BulkJobLog struct {
	ID              string
	StartDate       time.Time
	EndDate         time.Time
	RoomTypeIDs     []string
	RatePlanIDs     []string
	AdjustmentType  AdjustmentType
	AdjustmentValue float64
	CreatedCount    int
	UpdatedCount    int
	Reason          string
	Actor           string
	DurationMs      int64
	CreatedAt       time.Time
}

type BulkJobRepository interface {
	SaveBulkJob(job *BulkJobLog) error
	ListBulkJobs(page, limit int32) ([]*BulkJobLog, int64, error)
}
