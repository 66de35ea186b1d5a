// Package medication holds the medication record, its editable draft and
// the error kinds shared by the store, the controller and the presentation layers.
package medication

import (
	"fmt"
	"sort"
)

// Frequency is the descriptive schedule tag of a record. It has no scheduling effect.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyLimited Frequency = "limited"
)

// Valid reports whether f is one of the known tags.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyLimited
}

// Label returns the text shown next to the dose time in list views.
func (f Frequency) Label() string {
	if f == FrequencyDaily {
		return "Daily"
	}
	return "With pauses"
}

// ParseFrequency parses a frequency tag.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown frequency %q", s)
	}
	return f, nil
}

// Record is the persisted shape of a medication entry.
// ID 0 means the record has not been persisted yet.
type Record struct {
	ID          int64
	Name        string
	StartDate   string // DD/MM/YYYY, free text
	Time        string // HH:MM, free text
	Frequency   Frequency
	EndDate     string // empty means no end date
	Description string
}

// Persisted reports whether the record has a store-assigned id.
func (r Record) Persisted() bool {
	return r.ID != 0
}

// SortByName orders records the way the store reads them:
// byte-wise by name, then by id.
func SortByName(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Name != records[j].Name {
			return records[i].Name < records[j].Name
		}
		return records[i].ID < records[j].ID
	})
}
