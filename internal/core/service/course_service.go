package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

const (
	defaultCredits  = 3
	defaultCapacity = 30
)

// CourseService implements CRUD use-cases on course records.
type CourseService struct {
	repo ports.CourseRepository
	log  zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

func (s *CourseService) Create(ctx context.Context, input ports.CourseInput) (*domain.Course, error) {
	credits := input.Credits
	if credits == 0 {
		credits = defaultCredits
	}
	capacity := input.Capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}

	now := time.Now().UTC()
	course := &domain.Course{
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		Credits:     credits,
		Instructor:  input.Instructor,
		Term:        input.Term,
		Capacity:    capacity,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("course_id", created.ID).Str("code", created.Code).Msg("course created")
	return created, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Update(ctx context.Context, id string, input ports.CourseInput) (*domain.Course, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Code = input.Code
	existing.Description = input.Description
	existing.Credits = input.Credits
	existing.Instructor = input.Instructor
	existing.Term = input.Term
	existing.Capacity = input.Capacity
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("course_id", id).Msg("course deleted")
	return nil
}
