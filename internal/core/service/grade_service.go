package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

// GradeService implements CRUD use-cases on grade records. Writes check that
// the referenced student and course actually exist.
type GradeService struct {
	repo     ports.GradeRepository
	students ports.StudentRepository
	courses  ports.CourseRepository
	log      zerolog.Logger
}

func NewGradeService(repo ports.GradeRepository, students ports.StudentRepository, courses ports.CourseRepository, log zerolog.Logger) *GradeService {
	return &GradeService{repo: repo, students: students, courses: courses, log: log}
}

func (s *GradeService) Create(ctx context.Context, input ports.GradeInput) (*domain.Grade, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	grade := &domain.Grade{
		StudentID: input.StudentID,
		CourseID:  input.CourseID,
		Score:     input.Score,
		Term:      input.Term,
		EvalType:  domain.EvalType(input.EvalType),
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, grade)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("grade_id", created.ID).
		Str("student_id", created.StudentID).
		Str("course_id", created.CourseID).
		Msg("grade created")
	return created, nil
}

func (s *GradeService) Get(ctx context.Context, id string) (*domain.Grade, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GradeService) List(ctx context.Context) ([]*domain.Grade, error) {
	return s.repo.List(ctx)
}

func (s *GradeService) Update(ctx context.Context, id string, input ports.GradeInput) (*domain.Grade, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	existing.StudentID = input.StudentID
	existing.CourseID = input.CourseID
	existing.Score = input.Score
	existing.Term = input.Term
	existing.EvalType = domain.EvalType(input.EvalType)
	existing.Notes = input.Notes
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *GradeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("grade_id", id).Msg("grade deleted")
	return nil
}

func (s *GradeService) checkReferences(ctx context.Context, input ports.GradeInput) error {
	if !domain.ValidEvalType(domain.EvalType(input.EvalType)) {
		return domain.ErrInvalidEvalType
	}
	if _, err := s.students.FindByID(ctx, input.StudentID); err != nil {
		return err
	}
	if _, err := s.courses.FindByID(ctx, input.CourseID); err != nil {
		return err
	}
	return nil
}
