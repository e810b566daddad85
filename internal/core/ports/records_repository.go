package ports

import (
	"context"

	"github.com/edugestion/school-records/internal/core/domain"
)

// StudentRepository defines persistence for student records. Email and
// enrollment id are unique at the store level; a violating Create or Update
// returns domain.ErrStudentExists.
type StudentRepository interface {
	Create(ctx context.Context, s *domain.Student) (*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
}

// CourseRepository defines persistence for course records. The course code
// is unique at the store level.
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}

// GradeRepository defines persistence for grade records.
type GradeRepository interface {
	Create(ctx context.Context, g *domain.Grade) (*domain.Grade, error)
	FindByID(ctx context.Context, id string) (*domain.Grade, error)
	List(ctx context.Context) ([]*domain.Grade, error)
	Update(ctx context.Context, g *domain.Grade) (*domain.Grade, error)
	Delete(ctx context.Context, id string) error
}
