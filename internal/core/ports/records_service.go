package ports

import (
	"context"

	"github.com/edugestion/school-records/internal/core/domain"
)

// StudentInput carries the writable fields of a student record.
type StudentInput struct {
	FirstName    string
	LastName     string
	Email        string
	BirthDate    string
	EnrollmentID string
	Phone        string
	Address      string
}

// StudentService defines use-case operations on student records.
type StudentService interface {
	Create(ctx context.Context, input StudentInput) (*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, id string, input StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}

// CourseInput carries the writable fields of a course record.
type CourseInput struct {
	Name        string
	Code        string
	Description string
	Credits     int
	Instructor  string
	Term        string
	Capacity    int
}

// CourseService defines use-case operations on course records.
type CourseService interface {
	Create(ctx context.Context, input CourseInput) (*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, id string, input CourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// GradeInput carries the writable fields of a grade record.
type GradeInput struct {
	StudentID string
	CourseID  string
	Score     float64
	Term      string
	EvalType  string
	Notes     string
}

// GradeService defines use-case operations on grade records. Create and
// Update verify that the referenced student and course exist.
type GradeService interface {
	Create(ctx context.Context, input GradeInput) (*domain.Grade, error)
	Get(ctx context.Context, id string) (*domain.Grade, error)
	List(ctx context.Context) ([]*domain.Grade, error)
	Update(ctx context.Context, id string, input GradeInput) (*domain.Grade, error)
	Delete(ctx context.Context, id string) error
}
