package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinboard/api/internal/models"
	appErrors "github.com/robinboard/api/pkg/errors"
)

type studentServiceMock struct {
	docs      []models.Document
	created   json.RawMessage
	deleted   string
	cleared   bool
	summary   models.BirthdaySummary
	pdf       []byte
	deleteErr error
}

func (m *studentServiceMock) List(ctx context.Context) ([]models.Document, error) {
	return m.docs, nil
}

func (m *studentServiceMock) Create(ctx context.Context, raw json.RawMessage) error {
	m.created = raw
	return nil
}

func (m *studentServiceMock) Clear(ctx context.Context) error {
	m.cleared = true
	return nil
}

func (m *studentServiceMock) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = id
	return nil
}

func (m *studentServiceMock) TodaysBirthdays(ctx context.Context) (models.BirthdaySummary, error) {
	return m.summary, nil
}

func (m *studentServiceMock) ExportPDF(ctx context.Context) ([]byte, error) {
	return m.pdf, nil
}

func TestStudentHandlerCreateForwardsRawBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &studentServiceMock{}
	h := NewStudentHandler(mock)

	payload := `[{"name":"Ali","class":"9-A","birthDate":"01-02"}]`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/students", bytes.NewReader([]byte(payload)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, payload, string(mock.created))
}

func TestStudentHandlerDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &studentServiceMock{deleteErr: appErrors.Clone(appErrors.ErrNotFound, "Öğrenci bulunamadı")}
	h := NewStudentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/students/x", nil)
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Delete(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Öğrenci bulunamadı", payload["message"])
}

func TestStudentHandlerBirthdaysPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &studentServiceMock{summary: models.BirthdaySummary{HasBirthday: true, Text: "Ali (9-A)"}}
	h := NewStudentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/birthdays/today", nil)

	h.Birthdays(c)
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.BirthdaySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.True(t, summary.HasBirthday)
	assert.Equal(t, "Ali (9-A)", summary.Text)
}

func TestStudentHandlerExportHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &studentServiceMock{pdf: []byte("%PDF-1.4")}
	h := NewStudentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/students/export", nil)

	h.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestStudentHandlerClear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock := &studentServiceMock{}
	h := NewStudentHandler(mock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/students", nil)

	h.Clear(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mock.cleared)
}
