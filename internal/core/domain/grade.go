package domain

import "time"

// EvalType classifies how a grade was assessed.
type EvalType string

const (
	EvalPartial  EvalType = "partial"
	EvalFinal    EvalType = "final"
	EvalProject  EvalType = "project"
	EvalHomework EvalType = "homework"
	EvalExam     EvalType = "exam"
)

// ValidEvalType reports whether t belongs to the closed evaluation set.
func ValidEvalType(t EvalType) bool {
	switch t {
	case EvalPartial, EvalFinal, EvalProject, EvalHomework, EvalExam:
		return true
	}
	return false
}

// Grade records a score a student obtained in a course for a given term.
type Grade struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	Score     float64   `json:"score"`
	Term      string    `json:"term"`
	EvalType  EvalType  `json:"eval_type"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
