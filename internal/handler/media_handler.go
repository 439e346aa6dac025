package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/robinboard/api/internal/dto"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/response"
)

type mediaService interface {
	List(ctx context.Context) ([]dto.MediaItem, error)
	Upload(ctx context.Context, originalName string, r io.Reader) (string, error)
	UpdateCaption(ctx context.Context, filename, caption string) error
	Delete(ctx context.Context, filename string) error
}

// MediaHandler exposes the slider upload endpoints.
type MediaHandler struct {
	service  mediaService
	validate *validator.Validate
}

// NewMediaHandler builds a new handler.
func NewMediaHandler(service mediaService, validate *validator.Validate) *MediaHandler {
	if validate == nil {
		validate = validator.New()
	}
	return &MediaHandler{service: service, validate: validate}
}

// List godoc
// @Summary List uploaded media
// @Tags Media
// @Produce json
// @Success 200 {array} dto.MediaItem
// @Router /files [get]
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Upload godoc
// @Summary Upload a media file
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or video"
// @Success 200 {object} response.Result
// @Router /upload [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Dosya seçilmedi"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Dosya okunamadı"))
		return
	}
	defer file.Close() //nolint:errcheck

	stored, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Dosya yüklendi", Filename: stored})
}

// UpdateCaption godoc
// @Summary Update a media caption
// @Tags Media
// @Accept json
// @Produce json
// @Param payload body dto.UpdateCaptionRequest true "Caption payload"
// @Success 200 {object} response.Result
// @Router /files/update [post]
func (h *MediaHandler) UpdateCaption(c *gin.Context) {
	var req dto.UpdateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz istek"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Dosya adı eksik"))
		return
	}
	if err := h.service.UpdateCaption(c.Request.Context(), req.Filename, req.Caption); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Açıklama güncellendi"})
}

// Delete godoc
// @Summary Delete an uploaded file
// @Tags Media
// @Accept json
// @Produce json
// @Param payload body dto.DeleteFileRequest true "Delete payload"
// @Success 200 {object} response.Result
// @Router /files/delete [post]
func (h *MediaHandler) Delete(c *gin.Context) {
	var req dto.DeleteFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz istek"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Dosya adı eksik"))
		return
	}
	if err := h.service.Delete(c.Request.Context(), req.Filename); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Dosya silindi"})
}
