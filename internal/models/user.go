package models

type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r UserRole) Valid() bool {
	return r == RolePatient || r == RoleDoctor || r == RoleAdmin
}

type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"` // Stored in the document; strip before returning to clients.
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
}

// Sanitized returns a copy of u with the password removed, safe to hand
// to clients or session state.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
