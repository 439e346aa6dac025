package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robinboard/api/internal/models"
	appErrors "github.com/robinboard/api/pkg/errors"
	"github.com/robinboard/api/pkg/export"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	ListByBirthDates(ctx context.Context, keys []string) ([]models.Student, error)
	CreateBulk(ctx context.Context, students []models.Student) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) error
}

var turkishWeekdays = map[time.Weekday]string{
	time.Monday:    "Pazartesi",
	time.Tuesday:   "Salı",
	time.Wednesday: "Çarşamba",
	time.Thursday:  "Perşembe",
	time.Friday:    "Cuma",
	time.Saturday:  "Cumartesi",
	time.Sunday:    "Pazar",
}

// birthDateKey is the year-less "DD-MM" layout used for birthday lookups.
const birthDateKey = "02-01"

// StudentService manages the roster and the birthday ticker query.
type StudentService struct {
	repo     studentRepository
	exporter *export.PDFExporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, exporter *export.PDFExporter, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, exporter: exporter, logger: logger, now: time.Now}
}

// List returns every student with the identity exposed as a string id.
func (s *StudentService) List(ctx context.Context) ([]models.Document, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	docs := make([]models.Document, 0, len(students))
	for _, student := range students {
		docs = append(docs, student.AsDocument())
	}
	return docs, nil
}

// Create accepts a single record or an ordered sequence of records.
// Client-supplied identity fields are stripped; an empty sequence is a
// successful no-op.
func (s *StudentService) Create(ctx context.Context, raw json.RawMessage) error {
	items, err := decodeStudentPayload(raw)
	if err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Geçersiz öğrenci verisi")
	}

	students := make([]models.Student, 0, len(items))
	for _, item := range items {
		students = append(students, studentFromDocument(item))
	}
	if err := s.repo.CreateBulk(ctx, students); err != nil {
		return storeUnavailable(err)
	}
	return nil
}

// Clear deletes every student record unconditionally.
func (s *StudentService) Clear(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return storeUnavailable(err)
	}
	return nil
}

// Delete removes exactly one student by id.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Geçersiz öğrenci kimliği")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeUnavailable(err)
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Öğrenci bulunamadı")
	}
	return nil
}

// TodaysBirthdays builds the ticker line for today's birthdays. On
// Fridays the lookup also covers Saturday and Sunday so a board that is
// only watched on weekdays still announces weekend birthdays.
func (s *StudentService) TodaysBirthdays(ctx context.Context) (models.BirthdaySummary, error) {
	now := s.now()
	targets := []time.Time{now}
	includesWeekend := now.Weekday() == time.Friday
	if includesWeekend {
		targets = append(targets, now.AddDate(0, 0, 1), now.AddDate(0, 0, 2))
	}

	keys := make([]string, len(targets))
	for i, target := range targets {
		keys[i] = target.Format(birthDateKey)
	}

	students, err := s.repo.ListByBirthDates(ctx, keys)
	if err != nil {
		return models.BirthdaySummary{}, storeUnavailable(err)
	}

	grouped := make(map[string][]models.Student, len(keys))
	for _, student := range students {
		grouped[student.BirthDate] = append(grouped[student.BirthDate], student)
	}

	parts := make([]string, 0, len(students))
	for _, target := range targets {
		group := grouped[target.Format(birthDateKey)]
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		for _, student := range group {
			label := fmt.Sprintf("%s (%s)", student.Name, student.Class)
			if includesWeekend && (target.Weekday() == time.Saturday || target.Weekday() == time.Sunday) {
				label = fmt.Sprintf("%s - %s", label, turkishWeekdays[target.Weekday()])
			}
			parts = append(parts, label)
		}
	}

	return models.BirthdaySummary{
		HasBirthday:            len(parts) > 0,
		Text:                   strings.Join(parts, ", "),
		IncludesWeekendPreview: includesWeekend,
	}, nil
}

// ExportPDF renders the roster as a printable table.
func (s *StudentService) ExportPDF(ctx context.Context) ([]byte, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	headers := []string{"Ad Soyad", "Sinif", "Dogum Gunu"}
	rows := make([]map[string]string, 0, len(students))
	for _, student := range students {
		rows = append(rows, map[string]string{
			headers[0]: student.Name,
			headers[1]: student.Class,
			headers[2]: student.BirthDate,
		})
	}
	pdf, err := s.exporter.Render(export.Dataset{Headers: headers, Rows: rows}, "Ogrenci Listesi")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "PDF oluşturulamadı")
	}
	return pdf, nil
}

// decodeStudentPayload accepts either a JSON object or a JSON array of
// objects; anything else is a validation error.
func decodeStudentPayload(raw json.RawMessage) ([]models.Document, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []models.Document
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var single models.Document
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []models.Document{single}, nil
}

// studentFromDocument lifts the well-known fields and keeps the rest in
// Extra. Identity fields from the client are discarded.
func studentFromDocument(doc models.Document) models.Student {
	student := models.Student{Extra: models.Document{}}
	for key, value := range doc {
		switch key {
		case "id", "_id":
			continue
		case "name":
			student.Name, _ = value.(string)
		case "class":
			student.Class, _ = value.(string)
		case "birthDate":
			student.BirthDate, _ = value.(string)
		default:
			student.Extra[key] = value
		}
	}
	return student
}
