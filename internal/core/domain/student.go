package domain

import "time"

// Student is an enrolled-student record, independent of any User account.
type Student struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	BirthDate    string    `json:"birth_date"` // YYYY-MM-DD
	EnrollmentID string    `json:"enrollment_id"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
