package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	calendarResponse "github.com/hoteldesk/rate-calendar-service/internal/delivery/http/dto/calendar/response"
	"github.com/hoteldesk/rate-calendar-service/internal/domain"
	"github.com/hoteldesk/rate-calendar-service/internal/usecase"
)

type configPayload struct {
	Name     string   `json:"name" binding:"required"`
	Code     string   `json:"code" binding:"required"`
	BaseRate *float64 `json:"base_rate"`
	IsActive *bool    `json:"is_active"`
}

type configResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	BaseRate *float64 `json:"base_rate,omitempty"`
	IsActive bool     `json:"is_active"`
}

type RatePlanHandler struct {
	RoomTypeUsecase usecase.RoomTypeUsecase
	RatePlanUsecase usecase.RatePlanUsecase
}

func NewRatePlanHandler(roomTypeUsecase usecase.RoomTypeUsecase, ratePlanUsecase usecase.RatePlanUsecase) *RatePlanHandler {
	return &RatePlanHandler{
		RoomTypeUsecase: roomTypeUsecase,
		RatePlanUsecase: ratePlanUsecase,
	}
}

func (h *RatePlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/room-types", h.ListRoomTypes)
	router.POST("/room-types", h.CreateRoomType)
	router.PATCH("/room-types/:id", h.UpdateRoomType)

	router.GET("/rate-plans", h.ListRatePlans)
	router.POST("/rate-plans", h.CreateRatePlan)
	router.PATCH("/rate-plans/:id", h.UpdateRatePlan)
}

func (h *RatePlanHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.RoomTypeUsecase.ListRoomTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result := make([]configResponse, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		result = append(result, configResponse{
			ID:       roomType.ID,
			Name:     roomType.Name,
			Code:     roomType.Code,
			BaseRate: roomType.BaseRate,
			IsActive: roomType.IsActive,
		})
	}
	c.JSON(http.StatusOK, gin.H{"room_types": result})
}

func (h *RatePlanHandler) CreateRoomType(c *gin.Context) {
	var req configPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	roomType := &domain.RoomTypeConfig{
		Name:     req.Name,
		Code:     req.Code,
		BaseRate: req.BaseRate,
		IsActive: true,
	}
	if req.IsActive != nil {
		roomType.IsActive = *req.IsActive
	}
	if err := h.RoomTypeUsecase.AddRoomType(roomType); err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, configResponse{
		ID:       roomType.ID,
		Name:     roomType.Name,
		Code:     roomType.Code,
		BaseRate: roomType.BaseRate,
		IsActive: roomType.IsActive,
	})
}

func (h *RatePlanHandler) UpdateRoomType(c *gin.Context) {
	roomType, err := h.RoomTypeUsecase.GetRoomTypeByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRoomTypeNotFound) {
			c.JSON(http.StatusNotFound, calendarResponse.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	var req configPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}
	roomType.Name = req.Name
	roomType.Code = req.Code
	roomType.BaseRate = req.BaseRate
	if req.IsActive != nil {
		roomType.IsActive = *req.IsActive
	}

	if err := h.RoomTypeUsecase.EditRoomType(roomType); err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, configResponse{
		ID:       roomType.ID,
		Name:     roomType.Name,
		Code:     roomType.Code,
		BaseRate: roomType.BaseRate,
		IsActive: roomType.IsActive,
	})
}

func (h *RatePlanHandler) ListRatePlans(c *gin.Context) {
	ratePlans, err := h.RatePlanUsecase.ListRatePlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	result := make([]configResponse, 0, len(ratePlans))
	for _, ratePlan := range ratePlans {
		result = append(result, configResponse{
			ID:       ratePlan.ID,
			Name:     ratePlan.Name,
			Code:     ratePlan.Code,
			BaseRate: ratePlan.BaseRate,
			IsActive: ratePlan.IsActive,
		})
	}
	c.JSON(http.StatusOK, gin.H{"rate_plans": result})
}

func (h *RatePlanHandler) CreateRatePlan(c *gin.Context) {
	var req configPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	ratePlan := &domain.RatePlanConfig{
		Name:     req.Name,
		Code:     req.Code,
		BaseRate: req.BaseRate,
		IsActive: true,
	}
	if req.IsActive != nil {
		ratePlan.IsActive = *req.IsActive
	}
	if err := h.RatePlanUsecase.AddRatePlan(ratePlan); err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, configResponse{
		ID:       ratePlan.ID,
		Name:     ratePlan.Name,
		Code:     ratePlan.Code,
		BaseRate: ratePlan.BaseRate,
		IsActive: ratePlan.IsActive,
	})
}

func (h *RatePlanHandler) UpdateRatePlan(c *gin.Context) {
	ratePlan, err := h.RatePlanUsecase.GetRatePlanByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRatePlanNotFound) {
			c.JSON(http.StatusNotFound, calendarResponse.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	var req configPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}
	ratePlan.Name = req.Name
	ratePlan.Code = req.Code
	ratePlan.BaseRate = req.BaseRate
	if req.IsActive != nil {
		ratePlan.IsActive = *req.IsActive
	}

	if err := h.RatePlanUsecase.EditRatePlan(ratePlan); err != nil {
		c.JSON(http.StatusInternalServerError, calendarResponse.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, configResponse{
		ID:       ratePlan.ID,
		Name:     ratePlan.Name,
		Code:     ratePlan.Code,
		BaseRate: ratePlan.BaseRate,
		IsActive: ratePlan.IsActive,
	})
}
