package models

// AppData is the single root document holding every collection. All
// relationships between collections are by-value id references, so
// cascading operations must rewrite each affected collection within one
// document write.
type AppData struct {
	Users          []User          `json:"users"`
	DoctorProfiles []DoctorProfile `json:"doctorProfiles"`
	PatientData    []PatientData   `json:"patientData"`
	Appointments   []Appointment   `json:"appointments"`
}
