package service

import (
	"context"
	"errors"
	"fmt"

	"grade-portal/internal/importer"
	"grade-portal/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ImportResult is the outcome of a bulk CSV import. Parse errors are
// collected per row and never abort the batch; rows that parsed are still
// written, so a file of nothing but bad rows yields zero counts and a full
// error list, not a failure.
type ImportResult struct {
	InsertedCount int                 `json:"insertedCount"`
	UpdatedCount  int                 `json:"updatedCount"`
	Errors        []importer.RowError `json:"errors"`
}

// ImportService applies bulk CSV uploads. Questions upsert on
// (subject, question_id); students upsert on email, and a freshly inserted
// student gets a progress row at the lowest rung of every subject's ladder.
type ImportService struct {
	Questions *repository.QuestionRepository
	Students  *repository.StudentRepository
	Seeder    *ProgressSeeder
}

func NewImportService(questions *repository.QuestionRepository, students *repository.StudentRepository, seeder *ProgressSeeder) *ImportService {
	return &ImportService{
		Questions: questions,
		Students:  students,
		Seeder:    seeder,
	}
}

// ImportQuestions parses and upserts a question CSV for one subject.
// Storage failures abort with an error; per-row parse problems do not.
func (s *ImportService) ImportQuestions(ctx context.Context, subjectID, csvText string) (*ImportResult, error) {
	questions, rowErrs := importer.ParseQuestions(csvText)
	result := &ImportResult{Errors: rowErrs}
	if result.Errors == nil {
		result.Errors = []importer.RowError{}
	}

	for _, q := range questions {
		existing, err := s.Questions.FindByQuestionID(ctx, subjectID, q.QuestionID)
		switch {
		case err == nil:
			update := bson.M{
				"text":           q.Text,
				"choice_1":       q.Choice1,
				"choice_2":       q.Choice2,
				"choice_3":       q.Choice3,
				"choice_4":       q.Choice4,
				"correct_answer": q.CorrectAnswer,
			}
			if err := s.Questions.Update(ctx, existing.ID, update); err != nil {
				return nil, fmt.Errorf("update question %d: %w", q.QuestionID, err)
			}
			result.UpdatedCount++
		case errors.Is(err, mongo.ErrNoDocuments):
			q.ID = uuid.NewString()
			q.SubjectID = subjectID
			if err := s.Questions.Create(ctx, &q); err != nil {
				return nil, fmt.Errorf("insert question %d: %w", q.QuestionID, err)
			}
			result.InsertedCount++
		default:
			return nil, fmt.Errorf("lookup question %d: %w", q.QuestionID, err)
		}
	}
	return result, nil
}

// ImportStudents parses and upserts a student CSV.
func (s *ImportService) ImportStudents(ctx context.Context, csvText string) (*ImportResult, error) {
	students, rowErrs := importer.ParseStudents(csvText)
	result := &ImportResult{Errors: rowErrs}
	if result.Errors == nil {
		result.Errors = []importer.RowError{}
	}

	for _, st := range students {
		existing, err := s.Students.FindByEmail(ctx, st.Email)
		switch {
		case err == nil:
			update := bson.M{
				"year":   st.Year,
				"class":  st.Class,
				"number": st.Number,
				"name":   st.Name,
			}
			if err := s.Students.Update(ctx, existing.ID, update); err != nil {
				return nil, fmt.Errorf("update student %s: %w", st.Email, err)
			}
			result.UpdatedCount++
		case errors.Is(err, mongo.ErrNoDocuments):
			st.ID = uuid.NewString()
			if err := s.Students.Create(ctx, &st); err != nil {
				return nil, fmt.Errorf("insert student %s: %w", st.Email, err)
			}
			if err := s.Seeder.SeedStudent(ctx, st.ID); err != nil {
				return nil, err
			}
			result.InsertedCount++
		default:
			return nil, fmt.Errorf("lookup student %s: %w", st.Email, err)
		}
	}
	return result, nil
}
