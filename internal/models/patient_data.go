package models

// PatientData is a patient's health record. AssignedDoctorID is a weak
// reference to a doctor User id: it is never enforced and may dangle if
// that doctor is removed.
type PatientData struct {
	UserID           string         `json:"userId"`
	SymptomsLog      []SymptomEntry `json:"symptomsLog"` // insertion order = chronological
	AssignedDoctorID string         `json:"assignedDoctorId,omitempty"`
}

type SymptomEntry struct {
	ID                string `json:"id"`
	Date              string `json:"date"` // ISO 8601 timestamp
	Symptoms          string `json:"symptoms"`
	MatchedSpecialist string `json:"matchedSpecialist,omitempty"` // free-text label, not a foreign key
}
