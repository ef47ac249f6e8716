package domain

// Profile holds the single tenant's identity shown in the UI header.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
