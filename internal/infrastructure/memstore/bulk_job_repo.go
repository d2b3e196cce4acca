package memstore

import (
	"sync"

	"github.com/hoteldesk/rate-calendar-service/internal/domain"
)

type MemoryBulkJobRepository struct {
	jobs []*domain.BulkJobLog
	mu   sync.RWMutex
}

func NewMemoryBulkJobRepository() *MemoryBulkJobRepository {
	return &MemoryBulkJobRepository{}
}

func (r *MemoryBulkJobRepository) SaveBulkJob(job *domain.BulkJobLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := *job
	// newest first, matching the sql repo's created_at DESC ordering
	r.jobs = append([]*domain.BulkJobLog{&cloned}, r.jobs...)
	return nil
}

func (r *MemoryBulkJobRepository) ListBulkJobs(page, limit int32) ([]*domain.BulkJobLog, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.jobs))
	start := int((page - 1) * limit)
	if start >= len(r.jobs) {
		return []*domain.BulkJobLog{}, total, nil
	}
	end := start + int(limit)
	if end > len(r.jobs) {
		end = len(r.jobs)
	}

	result := make([]*domain.BulkJobLog, 0, end-start)
	for _, job := range r.jobs[start:end] {
		cloned := *job
		result = append(result, &cloned)
	}
	return result, total, nil
}
