package medication

import "strings"

// Draft is the editable form state for a record. It never carries an id;
// the id of the record being edited is kept by the controller.
type Draft struct {
	Name        string
	StartDate   string
	Time        string
	Frequency   Frequency
	EndDate     string
	Description string
}

// NewDraft returns an empty draft for the create form.
func NewDraft() Draft {
	return Draft{Frequency: FrequencyDaily}
}

// DraftFromRecord loads r into a draft for the edit form.
func DraftFromRecord(r Record) Draft {
	d := Draft{
		Name:        r.Name,
		StartDate:   r.StartDate,
		Time:        r.Time,
		Frequency:   r.Frequency,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
	if !d.Frequency.Valid() {
		d.Frequency = FrequencyDaily
	}
	return d
}

// Validate checks the required fields. The first failing field is reported.
func (d Draft) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"start_date", d.StartDate},
		{"time", d.Time},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "cannot be empty"}
		}
	}
	if !d.Frequency.Valid() {
		return &ValidationError{Field: "frequency", Message: "must be daily or limited"}
	}
	return nil
}

// Record maps the draft to a record with the given id.
// Text fields are trimmed of surrounding whitespace.
func (d Draft) Record(id int64) Record {
	return Record{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		StartDate:   strings.TrimSpace(d.StartDate),
		Time:        strings.TrimSpace(d.Time),
		Frequency:   d.Frequency,
		EndDate:     strings.TrimSpace(d.EndDate),
		Description: strings.TrimSpace(d.Description),
	}
}
