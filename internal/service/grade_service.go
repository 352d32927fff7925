package service

import (
	"context"

	"grade-portal/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type gradeStore interface {
	gradeFinder
	Create(ctx context.Context, grade *models.GradeDefinition) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type GradeService struct {
	Repo   gradeStore
	Seeder *ProgressSeeder
}

func NewGradeService(repo gradeStore, seeder *ProgressSeeder) *GradeService {
	return &GradeService{Repo: repo, Seeder: seeder}
}

func (s *GradeService) ListGrades(ctx context.Context, subjectID string) ([]models.GradeDefinition, error) {
	return s.Repo.FindBySubject(ctx, subjectID)
}

// CreateGrade stores the grade and backfills progress rows for the subject.
// The subject's first grade is what makes seeding possible, since a progress
// row starts at the bottom rung of the ladder.
func (s *GradeService) CreateGrade(ctx context.Context, grade *models.GradeDefinition) error {
	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}
	if err := s.Repo.Create(ctx, grade); err != nil {
		return err
	}
	return s.Seeder.SeedSubject(ctx, grade.SubjectID)
}

func (s *GradeService) UpdateGrade(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *GradeService) DeleteGrade(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
