package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CalendarMetrics holds every metric the rate calendar exposes
type CalendarMetrics struct {
	OverridesAppliedTotal prometheus.CounterVec

	BulkUpdatesTotal        prometheus.CounterVec
	BulkEntriesCreatedTotal prometheus.CounterVec
	BulkEntriesUpdatedTotal prometheus.CounterVec
	BulkUpdateDuration      prometheus.HistogramVec

	MonthCopiesTotal   prometheus.CounterVec
	EntriesCopiedTotal prometheus.CounterVec

	ValidationFailuresTotal prometheus.CounterVec

	CalendarEntriesGauge prometheus.Gauge
}

func NewCalendarMetrics() *CalendarMetrics {
	return &CalendarMetrics{
		OverridesAppliedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_overrides_applied_total",
				Help: "Total number of manual rate overrides applied",
			},
			[]string{"room_type_id", "rate_plan_id"},
		),

		BulkUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_bulk_updates_total",
				Help: "Total number of bulk rate updates executed",
			},
			[]string{"adjustment_type"},
		),

		BulkEntriesCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_bulk_entries_created_total",
				Help: "Calendar entries created by bulk updates",
			},
			[]string{"adjustment_type"},
		),

		BulkEntriesUpdatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_bulk_entries_updated_total",
				Help: "Calendar entries updated by bulk updates",
			},
			[]string{"adjustment_type"},
		),

		BulkUpdateDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_bulk_update_duration_seconds",
				Help:    "Bulk update execution time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"adjustment_type"},
		),

		MonthCopiesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_month_copies_total",
				Help: "Total number of copy-to-next-month runs",
			},
			[]string{"source_month"},
		),

		EntriesCopiedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_entries_copied_total",
				Help: "Calendar entries copied forward between months",
			},
			[]string{"source_month"},
		),

		ValidationFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_validation_failures_total",
				Help: "Rejected calendar mutations by operation",
			},
			[]string{"operation"},
		),

		CalendarEntriesGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_calendar_entries",
				Help: "Current number of persisted calendar entries",
			},
		),
	}
}

func (m *CalendarMetrics) RecordOverrideApplied(roomTypeID, ratePlanID string) {
	m.OverridesAppliedTotal.WithLabelValues(roomTypeID, ratePlanID).Inc()
}

func (m *CalendarMetrics) RecordBulkUpdate(adjustmentType string, created, updated int, durationSeconds float64) {
	m.BulkUpdatesTotal.WithLabelValues(adjustmentType).Inc()
	m.BulkEntriesCreatedTotal.WithLabelValues(adjustmentType).Add(float64(created))
	m.BulkEntriesUpdatedTotal.WithLabelValues(adjustmentType).Add(float64(updated))
	m.BulkUpdateDuration.WithLabelValues(adjustmentType).Observe(durationSeconds)
}

func (m *CalendarMetrics) RecordMonthCopy(sourceMonth string, copied int) {
	m.MonthCopiesTotal.WithLabelValues(sourceMonth).Inc()
	m.EntriesCopiedTotal.WithLabelValues(sourceMonth).Add(float64(copied))
}

func (m *CalendarMetrics) RecordValidationFailure(operation string) {
	m.ValidationFailuresTotal.WithLabelValues(operation).Inc()
}

func (m *CalendarMetrics) SetCalendarSize(count int64) {
	m.CalendarEntriesGauge.Set(float64(count))
}
