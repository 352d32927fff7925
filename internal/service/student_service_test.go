package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"grade-portal/internal/models"
)

type fakeStudentStore struct {
	created []*models.Student
}

func (f *fakeStudentStore) FindAll(_ context.Context) ([]models.Student, error) {
	var out []models.Student
	for _, s := range f.created {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentStore) FindByID(_ context.Context, id string) (*models.Student, error) {
	for _, s := range f.created {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	f.created = append(f.created, student)
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, id string, update bson.M) error {
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id string) error {
	return nil
}

func TestCreateStudentOpensProgress(t *testing.T) {
	store := &fakeStudentStore{}
	seeder, table := newTestSeeder()
	svc := NewStudentService(store, seeder)

	student := &models.Student{Email: "taro@example.jp", Year: 5, Class: "2", Number: 14, Name: "山田太郎"}
	err := svc.CreateStudent(context.Background(), student)
	require.NoError(t, err)
	require.NotEmpty(t, student.ID)
	require.Len(t, store.created, 1)

	// the new student can challenge right away in every laddered subject
	require.Len(t, table.rows, 1)
	assert.Equal(t, student.ID, table.rows[0].StudentID)
	assert.Equal(t, "kanji", table.rows[0].SubjectID)
	assert.Equal(t, "10級", table.rows[0].CurrentGrade)
}
