package service

import (
	"context"

	"grade-portal/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type studentStore interface {
	FindAll(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

type StudentService struct {
	Repo   studentStore
	Seeder *ProgressSeeder
}

func NewStudentService(repo studentStore, seeder *ProgressSeeder) *StudentService {
	return &StudentService{Repo: repo, Seeder: seeder}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.Repo.FindAll(ctx)
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.Repo.FindByID(ctx, id)
}

// CreateStudent stores the student and opens their progress in every subject.
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	if err := s.Repo.Create(ctx, student); err != nil {
		return err
	}
	return s.Seeder.SeedStudent(ctx, student.ID)
}

func (s *StudentService) UpdateStudent(ctx context.Context, id string, update map[string]any) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
