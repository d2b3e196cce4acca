package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/memstore"
	"github.com/hoteldesk/rate-calendar-service/internal/infrastructure/metrics"
	"github.com/hoteldesk/rate-calendar-service/internal/usecase"
)

var handlerMetrics = metrics.NewCalendarMetrics()

func ratePtr(v float64) *float64 { return &v }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	roomTypeRepo := memstore.NewMemoryRoomTypeRepository()
	ratePlanRepo := memstore.NewMemoryRatePlanRepository()
	if err := roomTypeRepo.CreateRoomType(&domain.RoomTypeConfig{
		ID: "deluxe", Name: "Deluxe", Code: "DLX", BaseRate: ratePtr(150), IsActive: true,
	}); err != nil {
		t.Fatalf("seed room type: %v", err)
	}
	if err := ratePlanRepo.CreateRatePlan(&domain.RatePlanConfig{
		ID: "bar", Name: "Best Available Rate", Code: "BAR", IsActive: true,
	}); err != nil {
		t.Fatalf("seed rate plan: %v", err)
	}

	calendarUsecase := usecase.NewDefaultCalendarUsecase(
		memstore.NewMemoryCalendarRepository(),
		roomTypeRepo,
		ratePlanRepo,
		memstore.NewMemoryBulkJobRepository(),
		nil,
		handlerMetrics,
		"rate-events",
	)

	router := gin.New()
	api := router.Group("/api")
	NewCalendarHandler(calendarUsecase).RegisterRoutes(api)
	NewRatePlanHandler(
		usecase.NewDefaultRoomTypeUsecase(roomTypeRepo),
		usecase.NewDefaultRatePlanUsecase(ratePlanRepo),
	).RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestBulkUpdateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/calendar/bulk-update", gin.H{
		"start_date":       "2024-06-01",
		"end_date":         "2024-06-03",
		"room_type_ids":    []string{"deluxe"},
		"rate_plan_ids":    []string{"bar"},
		"adjustment_type":  "fixed",
		"adjustment_value": 20,
		"reason":           "june launch",
		"actor":            "revenue@hotel",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	var result struct {
		JobID   string `json:"job_id"`
		Created int    `json:"created"`
		Updated int    `json:"updated"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Created != 3 || result.Updated != 0 {
		t.Errorf("counts = {%d, %d}, want {3, 0}", result.Created, result.Updated)
	}
	if result.JobID == "" {
		t.Error("job_id must be set")
	}

	// the entries must now resolve with the adjusted rate
	recorder = doJSON(t, router, http.MethodGet, "/api/calendar/resolve?date=2024-06-02&room_type_id=deluxe&rate_plan_id=bar", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("resolve status = %d", recorder.Code)
	}
	var resolved struct {
		Rate         float64 `json:"rate"`
		Availability int     `json:"availability"`
		IsOverride   bool    `json:"is_override"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("decode resolve: %v", err)
	}
	if resolved.Rate != 170 {
		t.Errorf("rate = %v, want 170", resolved.Rate)
	}
	if resolved.Availability != 10 {
		t.Errorf("availability = %d, want 10", resolved.Availability)
	}
	if !resolved.IsOverride {
		t.Error("bulk-created cell must resolve as override")
	}
}

func TestBulkUpdateEndpoint_ValidationFailures(t *testing.T) {
	router := newTestRouter(t)

	// blank reason is a domain rejection, not a binding error
	recorder := doJSON(t, router, http.MethodPost, "/api/calendar/bulk-update", gin.H{
		"start_date":       "2024-06-01",
		"end_date":         "2024-06-03",
		"room_type_ids":    []string{"deluxe"},
		"rate_plan_ids":    []string{"bar"},
		"adjustment_type":  "fixed",
		"adjustment_value": 20,
		"reason":           "   ",
		"actor":            "tester",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("blank reason status = %d, want 400", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/calendar/bulk-update", gin.H{
		"start_date":        "2024-06-01",
		"end_date":          "2024-06-03",
		"room_type_ids":     []string{"deluxe"},
		"rate_plan_ids":     []string{"bar"},
		"adjustment_type":   "fixed",
		"adjustment_value":  20,
		"apply_to_weekdays": []bool{true, true},
		"reason":            "short mask",
		"actor":             "tester",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("short weekday mask status = %d, want 400", recorder.Code)
	}
}

func TestOverrideEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/calendar/override", gin.H{
		"date":         "2024-06-10",
		"room_type_id": "deluxe",
		"rate_plan_id": "bar",
		"rate":         175.5,
		"availability": 4,
		"restrictions": []gin.H{{"type": "min-stay", "is_active": true, "value": 2}},
		"reason":       "event weekend",
		"actor":        "manager@hotel",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	var entry struct {
		ID           string  `json:"id"`
		Rate         float64 `json:"rate"`
		Availability int     `json:"availability"`
		IsOverride   bool    `json:"is_override"`
		Restrictions []struct {
			Type  string `json:"type"`
			Value int    `json:"value"`
		} `json:"restrictions"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.ID == "" || entry.Rate != 175.5 || entry.Availability != 4 || !entry.IsOverride {
		t.Errorf("entry = %+v", entry)
	}
	if len(entry.Restrictions) != 1 || entry.Restrictions[0].Type != "min-stay" || entry.Restrictions[0].Value != 2 {
		t.Errorf("restrictions = %+v", entry.Restrictions)
	}
}

func TestOverrideEndpoint_RejectsNegativeRate(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/calendar/override", gin.H{
		"date":         "2024-06-10",
		"room_type_id": "deluxe",
		"rate_plan_id": "bar",
		"rate":         -5,
		"availability": 4,
		"reason":       "bad",
		"actor":        "tester",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestResolveEndpoint_BaseRateFallback(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodGet, "/api/calendar/resolve?date=2024-06-01&room_type_id=deluxe&rate_plan_id=bar", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var resolved struct {
		Rate         float64 `json:"rate"`
		Availability int     `json:"availability"`
		IsOverride   bool    `json:"is_override"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resolved.Rate != 150 || resolved.Availability != 0 || resolved.IsOverride {
		t.Errorf("fallback cell = %+v", resolved)
	}
}

func TestCopyMonthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/calendar/override", gin.H{
		"date":         "2024-06-15",
		"room_type_id": "deluxe",
		"rate_plan_id": "bar",
		"rate":         130,
		"availability": 6,
		"reason":       "seed",
		"actor":        "tester",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("seed status = %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodPost, "/api/calendar/copy-month", gin.H{
		"month": "2024-06",
		"actor": "ops@hotel",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("copy status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	var result struct {
		SourceMonth string `json:"source_month"`
		Copied      int    `json:"copied"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.SourceMonth != "2024-06" || result.Copied != 1 {
		t.Errorf("result = %+v", result)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/calendar/resolve?date=2024-07-15&room_type_id=deluxe&rate_plan_id=bar", nil)
	var resolved struct {
		Rate float64 `json:"rate"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("decode resolve: %v", err)
	}
	if resolved.Rate != 130 {
		t.Errorf("copied rate = %v, want 130", resolved.Rate)
	}
}

func TestBulkJobsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/calendar/bulk-update", gin.H{
		"start_date":       "2024-06-01",
		"end_date":         "2024-06-02",
		"room_type_ids":    []string{"deluxe"},
		"rate_plan_ids":    []string{"bar"},
		"adjustment_type":  "percentage",
		"adjustment_value": 10,
		"reason":           "audited",
		"actor":            "tester",
	})

	recorder := doJSON(t, router, http.MethodGet, "/api/calendar/bulk-jobs", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	var result struct {
		Jobs []struct {
			ID             string `json:"id"`
			AdjustmentType string `json:"adjustment_type"`
			Created        int    `json:"created"`
		} `json:"jobs"`
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Total != 1 || len(result.Jobs) != 1 {
		t.Fatalf("jobs = %d (total %d), want 1", len(result.Jobs), result.Total)
	}
	if result.Jobs[0].AdjustmentType != "percentage" || result.Jobs[0].Created != 2 {
		t.Errorf("job = %+v", result.Jobs[0])
	}
}

func TestRoomTypeEndpoints(t *testing.T) {
	router := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/room-types", gin.H{
		"name":      "Suite",
		"code":      "STE",
		"base_rate": 320.0,
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/room-types", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list status = %d", recorder.Code)
	}
	var result struct {
		RoomTypes []struct {
			Code string `json:"code"`
		} `json:"room_types"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the seeded deluxe plus the new suite
	if len(result.RoomTypes) != 2 {
		t.Errorf("room type count = %d, want 2", len(result.RoomTypes))
	}
}
