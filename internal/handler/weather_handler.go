package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinboard/api/internal/dto"
	"github.com/robinboard/api/pkg/response"
)

type weatherService interface {
	Current(ctx context.Context) (dto.WeatherResponse, error)
}

// WeatherHandler exposes the weather widget endpoint.
type WeatherHandler struct {
	service weatherService
}

// NewWeatherHandler builds a new handler.
func NewWeatherHandler(service weatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// Current godoc
// @Summary Current weather
// @Tags Weather
// @Produce json
// @Success 200 {object} dto.WeatherResponse
// @Router /weather [get]
func (h *WeatherHandler) Current(c *gin.Context) {
	result, err := h.service.Current(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
