package models

import "time"

// Student represents a learner shown on the signage board. BirthDate is a
// "DD-MM" key with no year; Extra carries any additional admin-supplied
// fields verbatim.
type Student struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Class     string    `db:"class"`
	BirthDate string    `db:"birth_date"`
	Extra     Document  `db:"extra"`
	CreatedAt time.Time `db:"created_at"`
}

// AsDocument flattens the record for API responses: extra fields first,
// then the well-known fields, with the identity exposed as a string id.
func (s Student) AsDocument() Document {
	doc := s.Extra.Clone()
	doc["id"] = s.ID
	doc["name"] = s.Name
	doc["class"] = s.Class
	doc["birthDate"] = s.BirthDate
	return doc
}

// BirthdaySummary is the payload served to the birthday ticker.
type BirthdaySummary struct {
	HasBirthday            bool   `json:"hasBirthday"`
	Text                   string `json:"text"`
	IncludesWeekendPreview bool   `json:"includesWeekendPreview"`
}
