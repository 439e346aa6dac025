package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robinboard/api/internal/middleware"
	"github.com/robinboard/api/internal/models"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/response"
)

type settingsService interface {
	Get(ctx context.Context, isAdmin bool) (models.Document, error)
	Update(ctx context.Context, partial models.Document) (models.Document, error)
}

// SettingsHandler exposes the board configuration endpoints.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler builds a new handler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get godoc
// @Summary Board settings
// @Description Admin sessions receive the full document, everyone else the public subset.
// @Tags Settings
// @Produce json
// @Success 200 {object} models.Document
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

// Update godoc
// @Summary Update board settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body models.Document true "Partial settings document"
// @Success 200 {object} response.Result
// @Router /settings/update [post]
func (h *SettingsHandler) Update(c *gin.Context) {
	var partial models.Document
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz ayar verisi"))
		return
	}
	merged, err := h.service.Update(c.Request.Context(), partial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Ayarlar güncellendi", Data: merged})
}
