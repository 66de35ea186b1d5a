package storage

import "medtrack/internal/medication"

// medicationColumns is the column list shared by every medications query,
// in the order scanMedication expects.
const medicationColumns = "id, name, start_date, time, frequency, end_date, description"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMedication reads one medications row.
func scanMedication(s rowScanner) (medication.Record, error) {
	var r medication.Record
	var frequency string
	if err := s.Scan(&r.ID, &r.Name, &r.StartDate, &r.Time, &frequency, &r.EndDate, &r.Description); err != nil {
		return medication.Record{}, err
	}
	r.Frequency = medication.Frequency(frequency)
	return r, nil
}

// Preference keys.
const (
	// DarkModeKey stores the theme flag as "true"/"false".
	DarkModeKey = "dark_mode"
)
