package models

// LogActor identifies the user an audit entry is attributed to.
type LogActor struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

type SystemLog struct {
	Timestamp string    `json:"timestamp"`
	Message   string    `json:"message"`
	User      *LogActor `json:"user,omitempty"`
}
