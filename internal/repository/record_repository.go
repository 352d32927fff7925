package repository

import (
	"context"

	"grade-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordRepository is an append-only event log: records are inserted after
// a verified submission and never updated.
type RecordRepository struct {
	Col *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) *RecordRepository {
	return &RecordRepository{Col: db.Collection("quiz_records")}
}

func (r *RecordRepository) Append(ctx context.Context, record *models.QuizRecord) error {
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

func (r *RecordRepository) FindByStudentAndSubject(ctx context.Context, studentID, subjectID string) ([]models.QuizRecord, error) {
	return r.find(ctx, bson.M{"student_id": studentID, "subject_id": subjectID})
}

// FindBySubjectAndGrades returns the subject's records, optionally limited
// to the given grade names (nil means no grade filtering), newest first.
func (r *RecordRepository) FindBySubjectAndGrades(ctx context.Context, subjectID string, gradeNames []string) ([]models.QuizRecord, error) {
	filter := bson.M{"subject_id": subjectID}
	if gradeNames != nil {
		filter["grade"] = bson.M{"$in": gradeNames}
	}
	return r.find(ctx, filter)
}

func (r *RecordRepository) find(ctx context.Context, filter bson.M) ([]models.QuizRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "taken_at", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.QuizRecord
	for cur.Next(ctx) {
		var rec models.QuizRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
