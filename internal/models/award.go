package models

import "time"

// AwardRecord is one prize document.
//
// Optional fields are pointers: a document without the field and a document
// with an empty value are different things to the chart builders.
type AwardRecord struct {
	ID          string     `json:"id,omitempty"`
	Year        Year       `json:"year"`
	Category    string     `json:"category"`
	Gender      *string    `json:"gender,omitempty"`
	BornCountry *string    `json:"bornCountry,omitempty"`
	Born        *time.Time `json:"born,omitempty"`
	Age         *int       `json:"age,omitempty"`
}

// Lookup key for edit and delete. Several records may share it.
type AwardKey struct {
	Year     int    `json:"year"`
	Category string `json:"category"`
}

// Fields an edit may replace. Nil means "leave untouched".
type AwardPatch struct {
	Gender      *string `json:"gender,omitempty"`
	BornCountry *string `json:"bornCountry,omitempty"`
}

func (p AwardPatch) IsEmpty() bool {
	return p.Gender == nil && p.BornCountry == nil
}

// NewAward builds the record inserted by the add action.
// born and age are placeholders derived from year only; they are never
// recomputed afterwards.
func NewAward(year int, category, gender, country string) AwardRecord {
	born := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	age := year - 1900
	return AwardRecord{
		Year:        YearOf(year),
		Category:    category,
		Gender:      &gender,
		BornCountry: &country,
		Born:        &born,
		Age:         &age,
	}
}

// HasBornCountry reports whether the record carries the bornCountry field.
func (r AwardRecord) HasBornCountry() bool {
	return r.BornCountry != nil
}

func StringPtr(s string) *string { return &s }
