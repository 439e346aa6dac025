package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Document is a schemaless JSON object persisted in a JSONB column.
type Document map[string]interface{}

// Value implements driver.Valuer.
func (d Document) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *Document) Scan(src interface{}) error {
	if src == nil {
		*d = Document{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	return json.Unmarshal(raw, d)
}

// Clone returns a deep copy via a JSON round trip.
func (d Document) Clone() Document {
	if d == nil {
		return Document{}
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return Document{}
	}
	clone := Document{}
	if err := json.Unmarshal(raw, &clone); err != nil {
		return Document{}
	}
	return clone
}

// Settings wraps the singleton board configuration row.
type Settings struct {
	ID        int16     `db:"id"`
	Doc       Document  `db:"doc"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Settings document keys used by the backend itself. The document also
// carries free-form keys the backend stores without interpreting.
const (
	SettingsKeyDutySchedule      = "dutySchedule"
	SettingsKeyRotationStartDate = "dutyRotationStartDate"
	SettingsKeyWeatherCity       = "weatherCity"
	SettingsKeyWeatherAPIKey     = "weatherApiKey"
)

// PublicSettingsFields is the allow-list served to non-admin viewers.
var PublicSettingsFields = map[string]struct{}{
	"schoolName":                 {},
	"isEmergency":                {},
	"emergencyMessage":           {},
	"marqueeText":                {},
	"weatherCity":                {},
	SettingsKeyDutySchedule:      {},
	SettingsKeyRotationStartDate: {},
	"bellConfig":                 {},
}

// defaultDayPlan builds one weekday of the bell schedule: eight lessons
// with breaks between them and a lunch block after the configured lesson.
func defaultDayPlan(lessonDur, breakDur, lunchDur, lunchAfter, afternoonBreakDur int) Document {
	blocks := make([]interface{}, 0, 15)
	for lesson := 1; lesson <= 8; lesson++ {
		blocks = append(blocks, Document{"type": "lesson", "duration": lessonDur})
		if lesson == 8 {
			continue
		}
		if lesson == lunchAfter {
			blocks = append(blocks, Document{"type": "lunch", "duration": lunchDur})
			continue
		}
		dur := breakDur
		if lesson > lunchAfter {
			dur = afternoonBreakDur
		}
		blocks = append(blocks, Document{"type": "break", "duration": dur})
	}
	return Document{"startTime": "08:00", "blocks": blocks}
}

// DefaultSettings returns a deep copy of the factory settings document.
func DefaultSettings() Document {
	emptyDuty := func() Document {
		return Document{"Bahçe": "", "Zemin": "", "1.Kat": "", "2.Kat": ""}
	}
	defaults := Document{
		"schoolName":                 "Seyit Mustafa Çelik Fen Lisesi",
		"isEmergency":                false,
		"emergencyMessage":           "Acil durum! Lütfen toplanma alanına gidiniz.",
		"marqueeText":                "Hoş geldiniz. Burası RobinBoard dijital pano sistemi.",
		"weatherCity":                "Mardin",
		SettingsKeyWeatherAPIKey:     "",
		"dutyTeachers":               "",
		"birthdays":                  "",
		SettingsKeyRotationStartDate: "",
		SettingsKeyDutySchedule: Document{
			"Pazartesi": emptyDuty(),
			"Salı":      emptyDuty(),
			"Çarşamba":  emptyDuty(),
			"Perşembe":  emptyDuty(),
			"Cuma":      emptyDuty(),
		},
		"bellConfig": Document{
			"days": Document{
				"Pazartesi": defaultDayPlan(40, 10, 40, 5, 10),
				"Salı":      defaultDayPlan(40, 10, 40, 5, 10),
				"Çarşamba":  defaultDayPlan(40, 10, 40, 5, 10),
				"Perşembe":  defaultDayPlan(40, 10, 40, 5, 10),
				"Cuma":      defaultDayPlan(40, 10, 50, 5, 5),
				"Cumartesi": Document{"startTime": "08:00", "blocks": []interface{}{}},
				"Pazar":     Document{"startTime": "08:00", "blocks": []interface{}{}},
			},
		},
	}
	return defaults.Clone()
}
