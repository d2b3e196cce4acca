package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	calendarRequest "github.com/hoteldesk/rate-calendar-service/internal/delivery/http/dto/calendar/request"
	calendarResponse "github.com/hoteldesk/rate-calendar-service/internal/delivery/http/dto/calendar/response"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/usecase"
	calendardto "github.com/hoteldesk/rate-calendar-service/internal/usecase/dto/calendar"
)

const dateLayout = "2006-01-02"

type CalendarHandler struct {
	CalendarUsecase usecase.CalendarUsecase
}

func NewCalendarHandler(calendarUsecase usecase.CalendarUsecase) *CalendarHandler {
	return &CalendarHandler{CalendarUsecase: calendarUsecase}
}

func (h *CalendarHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/calendar/resolve", h.ResolveEffectiveRate)
	router.GET("/calendar/grid", h.ResolveGrid)
	router.GET("/calendar/entries", h.ListEntries)
	router.POST("/calendar/override", h.ApplyManualOverride)
	router.POST("/calendar/bulk-update", h.ApplyBulkUpdate)
	router.POST("/calendar/copy-month", h.CopyToNextMonth)
	router.GET("/calendar/bulk-jobs", h.ListBulkJobs)
}

// GET /api/calendar/resolve?date=2024-06-01&room_type_id=...&rate_plan_id=...
func (h *CalendarHandler) ResolveEffectiveRate(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}
	roomTypeID := c.Query("room_type_id")
	ratePlanID := c.Query("rate_plan_id")

	resolved, err := h.CalendarUsecase.ResolveEffectiveRate(date, roomTypeID, ratePlanID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendarResponse.EffectiveRateResponse{
		Date:         domain.NormalizeDate(date).Format(dateLayout),
		RoomTypeID:   roomTypeID,
		RatePlanID:   ratePlanID,
		Rate:         resolved.Rate,
		Availability: resolved.Availability,
		Restrictions: calendarResponse.FromRestrictions(resolved.Restrictions),
		IsOverride:   resolved.IsOverride,
	})
}

// GET /api/calendar/grid?from=...&to=...&room_type_ids=a,b&rate_plan_ids=c
func (h *CalendarHandler) ResolveGrid(c *gin.Context) {
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid to date"})
		return
	}

	cells, err := h.CalendarUsecase.ResolveGrid(&calendardto.GridInput{
		From:        from,
		To:          to,
		RoomTypeIDs: splitIDs(c.Query("room_type_ids")),
		RatePlanIDs: splitIDs(c.Query("rate_plan_ids")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result := make([]calendarResponse.EffectiveRateResponse, 0, len(cells))
	for _, cell := range cells {
		result = append(result, calendarResponse.FromGridCell(cell))
	}
	c.JSON(http.StatusOK, gin.H{"cells": result})
}

// GET /api/calendar/entries?from=...&to=...
func (h *CalendarHandler) ListEntries(c *gin.Context) {
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid from date"})
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid to date"})
		return
	}

	entries, err := h.CalendarUsecase.ListEntries(from, to, splitIDs(c.Query("room_type_ids")), splitIDs(c.Query("rate_plan_ids")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result := make([]calendarResponse.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, calendarResponse.FromEntry(entry))
	}
	c.JSON(http.StatusOK, gin.H{"entries": result})
}

// POST /api/calendar/override
func (h *CalendarHandler) ApplyManualOverride(c *gin.Context) {
	var req calendarRequest.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := h.CalendarUsecase.ApplyManualOverride(&calendardto.ManualOverrideInput{
		Date:         date,
		RoomTypeID:   req.RoomTypeID,
		RatePlanID:   req.RatePlanID,
		Rate:         req.Rate,
		Availability: req.Availability,
		Restrictions: toRestrictions(req.Restrictions),
		Reason:       req.Reason,
		Actor:        req.Actor,
	})
	if err != nil {
		c.JSON(statusForError(err), calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendarResponse.FromEntry(entry))
}

// POST /api/calendar/bulk-update
func (h *CalendarHandler) ApplyBulkUpdate(c *gin.Context) {
	var req calendarRequest.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid start_date"})
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid end_date"})
		return
	}

	weekdays, err := toWeekdays(req.ApplyToWeekdays)
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.CalendarUsecase.ApplyBulkUpdate(&calendardto.BulkUpdateInput{
		StartDate:        startDate,
		EndDate:          endDate,
		RoomTypeIDs:      req.RoomTypeIDs,
		RatePlanIDs:      req.RatePlanIDs,
		AdjustmentType:   domain.AdjustmentType(req.AdjustmentType),
		AdjustmentValue:  req.AdjustmentValue,
		Restrictions:     toRestrictions(req.Restrictions),
		ApplyToWeekdays:  weekdays,
		OverrideExisting: req.OverrideExisting,
		Reason:           req.Reason,
		Actor:            req.Actor,
	})
	if err != nil {
		c.JSON(statusForError(err), calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendarResponse.BulkUpdateResponse{
		JobID:   result.JobID,
		Created: result.Created,
		Updated: result.Updated,
	})
}

// POST /api/calendar/copy-month
func (h *CalendarHandler) CopyToNextMonth(c *gin.Context) {
	var req calendarRequest.CopyMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}
	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: "invalid month, expected YYYY-MM"})
		return
	}

	result, err := h.CalendarUsecase.CopyToNextMonth(month, req.Actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, calendarResponse.CopyMonthResponse{
		SourceMonth: result.SourceMonth.Format("2006-01"),
		Copied:      result.Copied,
	})
}

// GET /api/calendar/bulk-jobs?page=1&limit=20
func (h *CalendarHandler) ListBulkJobs(c *gin.Context) {
	page := parseInt32(c.DefaultQuery("page", "1"), 1)
	limit := parseInt32(c.DefaultQuery("limit", "20"), 20)

	jobs, total, err := h.CalendarUsecase.ListBulkJobs(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result := make([]calendarResponse.BulkJobResponse, 0, len(jobs))
	for _, job := range jobs {
		result = append(result, calendarResponse.FromBulkJob(job))
	}
	c.JSON(http.StatusOK, gin.H{"jobs": result, "total": total})
}

func toRestrictions(payload []calendarRequest.RestrictionPayload) []domain.Restriction {
	restrictions := make([]domain.Restriction, 0, len(payload))
	for _, r := range payload {
		restrictions = append(restrictions, domain.Restriction{
			Type:     domain.RestrictionType(r.Type),
			IsActive: r.IsActive,
			Value:    r.Value,
		})
	}
	return restrictions
}

func toWeekdays(payload []bool) ([7]bool, error) {
	var weekdays [7]bool
	if len(payload) == 0 {
		for i := range weekdays {
			weekdays[i] = true
		}
		return weekdays, nil
	}
	if len(payload) != 7 {
		return weekdays, errors.New("apply_to_weekdays must have exactly 7 entries, Sunday first")
	}
	copy(weekdays[:], payload)
	return weekdays, nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func parseInt32(raw string, fallback int32) int32 {
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || value < 1 {
		return fallback
	}
	return int32(value)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrInvalidAvailability),
		errors.Is(err, domain.ErrNoRoomTypes),
		errors.Is(err, domain.ErrNoRatePlans),
		errors.Is(err, domain.ErrBlankReason),
		errors.Is(err, domain.ErrInvalidAdjustment):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
