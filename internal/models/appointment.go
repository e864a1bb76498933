package models

type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusRescheduled AppointmentStatus = "rescheduled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRescheduled:
		return true
	}
	return false
}

// Appointment links a patient and a doctor by id. PatientID and
// DoctorID are weak references and may dangle after a user is removed.
//
// PatientName, DoctorName and DoctorSpecialization are never stored:
// they are joined in at read time against the current users and doctor
// profiles, and stripped again before any write.
type Appointment struct {
	ID                   string            `json:"id"`
	PatientID            string            `json:"patientId"`
	PatientName          string            `json:"patientName,omitempty"`
	DoctorID             string            `json:"doctorId"`
	DoctorName           string            `json:"doctorName,omitempty"`
	DoctorSpecialization string            `json:"doctorSpecialization,omitempty"`
	DateTime             string            `json:"dateTime"` // ISO 8601 timestamp
	Status               AppointmentStatus `json:"status"`
	Reason               string            `json:"reason,omitempty"`
	Notes                string            `json:"notes,omitempty"`        // doctor's notes
	Prescription         string            `json:"prescription,omitempty"` // link or text
}
