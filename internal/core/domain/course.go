package domain

import "time"

// Course is a catalogue entry for an academic course offering.
type Course struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Credits     int       `json:"credits"`
	Instructor  string    `json:"instructor"`
	Term        string    `json:"term"`
	Capacity    int       `json:"capacity"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
