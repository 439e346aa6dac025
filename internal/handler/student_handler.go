package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robinboard/api/internal/models"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/response"
)

type studentService interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, raw json.RawMessage) error
	Clear(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	TodaysBirthdays(ctx context.Context) (models.BirthdaySummary, error)
	ExportPDF(ctx context.Context) ([]byte, error)
}

// StudentHandler exposes the roster and birthday endpoints.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler builds a new handler.
func NewStudentHandler(service studentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {array} models.Document
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Create godoc
// @Summary Add students
// @Description Accepts a single student object or an array of them.
// @Tags Students
// @Accept json
// @Produce json
// @Success 200 {object} response.Result
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Geçersiz öğrenci verisi"))
		return
	}
	if err := h.service.Create(c.Request.Context(), raw); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Öğrenciler kaydedildi"})
}

// Clear godoc
// @Summary Delete every student
// @Tags Students
// @Produce json
// @Success 200 {object} response.Result
// @Router /students [delete]
func (h *StudentHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Tüm öğrenciler silindi"})
}

// Delete godoc
// @Summary Delete one student
// @Tags Students
// @Produce json
// @Param id path string true "Student id"
// @Success 200 {object} response.Result
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, response.Result{Message: "Öğrenci silindi"})
}

// Birthdays godoc
// @Summary Today's birthdays
// @Tags Students
// @Produce json
// @Success 200 {object} models.BirthdaySummary
// @Router /birthdays/today [get]
func (h *StudentHandler) Birthdays(c *gin.Context) {
	summary, err := h.service.TodaysBirthdays(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Export godoc
// @Summary Export the roster as PDF
// @Tags Students
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	pdf, err := h.service.ExportPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := "ogrenci-listesi-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
