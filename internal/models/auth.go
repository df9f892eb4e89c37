package models

// Actor is the authenticated caller as injected by the auth middleware.
type Actor struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Label is what audit log lines record as the performer.
func (a Actor) Label() string {
	if a.Email != "" {
		return a.Email
	}
	if a.UID != "" {
		return a.UID
	}
	return "unknown"
}
