package repository

import (
	"context"

	"grade-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByStudentAndSubject(ctx context.Context, studentID, subjectID string) (*models.Progress, error) {
	var progress models.Progress
	err := r.Col.FindOne(ctx, bson.M{"student_id": studentID, "subject_id": subjectID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) FindByStudent(ctx context.Context, studentID string) ([]models.Progress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}
	return rows, nil
}

func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	_, err := r.Col.InsertOne(ctx, progress)
	return err
}

// Save writes the mutable progress fields after a quiz submission.
func (r *ProgressRepository) Save(ctx context.Context, progress *models.Progress) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": progress.ID}, bson.M{"$set": bson.M{
		"current_grade":         progress.CurrentGrade,
		"consecutive_pass_days": progress.ConsecutivePassDays,
		"last_challenge_date":   progress.LastChallengeDate,
	}})
	return err
}
