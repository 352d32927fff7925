package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"grade-portal/internal/models"
)

type fakeGradeStore struct {
	ladders *fakeLadders
}

func (f *fakeGradeStore) FindBySubject(ctx context.Context, subjectID string) ([]models.GradeDefinition, error) {
	return f.ladders.FindBySubject(ctx, subjectID)
}

func (f *fakeGradeStore) Create(_ context.Context, grade *models.GradeDefinition) error {
	f.ladders.bySubject[grade.SubjectID] = append(f.ladders.bySubject[grade.SubjectID], *grade)
	return nil
}

func (f *fakeGradeStore) Update(_ context.Context, id string, update bson.M) error {
	return nil
}

func (f *fakeGradeStore) Delete(_ context.Context, id string) error {
	return nil
}

func TestCreateGradeBackfillsProgress(t *testing.T) {
	seeder, table := newTestSeeder()
	svc := NewGradeService(&fakeGradeStore{ladders: seeder.Grades.(*fakeLadders)}, seeder)

	// sansu has students but no ladder yet; its first grade opens progress
	// for every existing student
	err := svc.CreateGrade(context.Background(), &models.GradeDefinition{
		SubjectID: "sansu", GradeName: "10級", DisplayOrder: 1,
		StartID: 1, EndID: 10, NumQuestions: 5, PassScore: 60, RequiredConsecutiveDays: 3,
	})
	require.NoError(t, err)

	require.Len(t, table.rows, 2)
	for i, studentID := range []string{"s1", "s2"} {
		assert.Equal(t, studentID, table.rows[i].StudentID)
		assert.Equal(t, "sansu", table.rows[i].SubjectID)
		assert.Equal(t, "10級", table.rows[i].CurrentGrade)
	}
}
