package service

import (
	"context"
	"errors"
	"fmt"

	"grade-portal/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type subjectLister interface {
	FindAll(ctx context.Context) ([]models.Subject, error)
}

type studentLister interface {
	FindAll(ctx context.Context) ([]models.Student, error)
}

type progressSeedStore interface {
	FindByStudentAndSubject(ctx context.Context, studentID, subjectID string) (*models.Progress, error)
	Create(ctx context.Context, progress *models.Progress) error
}

// ProgressSeeder creates the per-(student, subject) progress rows. Every
// student gets exactly one row per subject, started at the bottom rung of
// the subject's ladder. Subjects without any grade yet are skipped; defining
// the subject's first grade backfills them via SeedSubject.
type ProgressSeeder struct {
	Subjects subjectLister
	Students studentLister
	Grades   gradeFinder
	Progress progressSeedStore
}

func NewProgressSeeder(subjects subjectLister, students studentLister, grades gradeFinder, progress progressSeedStore) *ProgressSeeder {
	return &ProgressSeeder{
		Subjects: subjects,
		Students: students,
		Grades:   grades,
		Progress: progress,
	}
}

// SeedStudent gives one student a progress row in every active subject.
func (s *ProgressSeeder) SeedStudent(ctx context.Context, studentID string) error {
	subjects, err := s.Subjects.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load subjects: %w", err)
	}
	for _, subject := range subjects {
		ladder, err := s.Grades.FindBySubject(ctx, subject.ID)
		if err != nil {
			return fmt.Errorf("load grades for %s: %w", subject.ID, err)
		}
		if err := s.seedOne(ctx, studentID, subject.ID, ladder); err != nil {
			return err
		}
	}
	return nil
}

// SeedSubject gives every existing student a progress row in one subject.
// Safe to call repeatedly; students who already have a row keep it.
func (s *ProgressSeeder) SeedSubject(ctx context.Context, subjectID string) error {
	ladder, err := s.Grades.FindBySubject(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("load grades for %s: %w", subjectID, err)
	}
	students, err := s.Students.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load students: %w", err)
	}
	for _, student := range students {
		if err := s.seedOne(ctx, student.ID, subjectID, ladder); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProgressSeeder) seedOne(ctx context.Context, studentID, subjectID string, ladder []models.GradeDefinition) error {
	if len(ladder) == 0 {
		return nil
	}

	_, err := s.Progress.FindByStudentAndSubject(ctx, studentID, subjectID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
	default:
		return fmt.Errorf("lookup progress for %s: %w", subjectID, err)
	}

	progress := &models.Progress{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		SubjectID:    subjectID,
		CurrentGrade: ladder[0].GradeName,
	}
	if err := s.Progress.Create(ctx, progress); err != nil {
		return fmt.Errorf("init progress for %s: %w", subjectID, err)
	}
	return nil
}
