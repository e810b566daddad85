package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edugestion/school-records/internal/core/domain"
	"github.com/edugestion/school-records/internal/core/ports"
)

// StudentService implements CRUD use-cases on student records.
type StudentService struct {
	repo ports.StudentRepository
	log  zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, log zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, log: log}
}

func (s *StudentService) Create(ctx context.Context, input ports.StudentInput) (*domain.Student, error) {
	now := time.Now().UTC()
	student := &domain.Student{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(input.Email),
		BirthDate:    input.BirthDate,
		EnrollmentID: input.EnrollmentID,
		Phone:        input.Phone,
		Address:      input.Address,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("student_id", created.ID).Str("enrollment_id", created.EnrollmentID).Msg("student created")
	return created, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.repo.List(ctx)
}

func (s *StudentService) Update(ctx context.Context, id string, input ports.StudentInput) (*domain.Student, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = strings.ToLower(input.Email)
	existing.BirthDate = input.BirthDate
	existing.EnrollmentID = input.EnrollmentID
	existing.Phone = input.Phone
	existing.Address = input.Address
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("student_id", id).Msg("student deleted")
	return nil
}
