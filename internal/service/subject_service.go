package service

import (
	"context"

	"grade-portal/internal/models"

	"github.com/google/uuid"
)

type subjectStore interface {
	FindAll(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, id string) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
}

type SubjectService struct {
	Repo   subjectStore
	Seeder *ProgressSeeder
}

func NewSubjectService(repo subjectStore, seeder *ProgressSeeder) *SubjectService {
	return &SubjectService{Repo: repo, Seeder: seeder}
}

func (s *SubjectService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.Repo.FindAll(ctx)
}

func (s *SubjectService) GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	return s.Repo.FindByID(ctx, id)
}

// CreateSubject stores the subject and opens progress for existing students.
// A brand-new subject has no ladder yet, so the real backfill usually runs
// when its first grade is defined.
func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	subject.Active = true
	if err := s.Repo.Create(ctx, subject); err != nil {
		return err
	}
	return s.Seeder.SeedSubject(ctx, subject.ID)
}
