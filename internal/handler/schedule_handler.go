package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinboard/api/internal/models"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/response"
)

type scheduleService interface {
	Get(ctx context.Context) (models.Document, error)
	Replace(ctx context.Context, days models.Document) error
}

// ScheduleHandler exposes the weekly class schedule endpoints.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Get godoc
// @Summary Weekly schedule
// @Tags Schedule
// @Produce json
// @Success 200 {object} models.Document
// @Router /schedule/get [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	days, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, days)
}

// Update godoc
// @Summary Replace the weekly schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body models.Document true "Days map"
// @Success 200 {object} response.Result
// @Router /schedule/update [post]
func (h *ScheduleHandler) Update(c *gin.Context) {
	var days models.Document
	if err := c.ShouldBindJSON(&days); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz ders programı verisi"))
		return
	}
	if err := h.service.Replace(c.Request.Context(), days); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Ders programı güncellendi"})
}
