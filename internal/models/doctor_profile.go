package models

// DoctorProfile extends a doctor User with practice details. At most
// one profile exists per UserID.
type DoctorProfile struct {
	UserID            string `json:"userId"`
	Specialization    string `json:"specialization"`
	Availability      string `json:"availability,omitempty"` // e.g. "Mon-Fri 9am-5pm"
	Bio               string `json:"bio,omitempty"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}
