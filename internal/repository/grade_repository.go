package repository

import (
	"context"

	"grade-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GradeRepository struct {
	Col *mongo.Collection
}

func NewGradeRepository(db *mongo.Database) *GradeRepository {
	return &GradeRepository{Col: db.Collection("grade_definitions")}
}

// FindBySubject returns the subject's ladder sorted by display order.
func (r *GradeRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.GradeDefinition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"subject_id": subjectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var grades []models.GradeDefinition
	for cur.Next(ctx) {
		var g models.GradeDefinition
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, nil
}

func (r *GradeRepository) FindByName(ctx context.Context, subjectID, gradeName string) (*models.GradeDefinition, error) {
	var grade models.GradeDefinition
	err := r.Col.FindOne(ctx, bson.M{"subject_id": subjectID, "grade_name": gradeName}).Decode(&grade)
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *GradeRepository) Create(ctx context.Context, grade *models.GradeDefinition) error {
	_, err := r.Col.InsertOne(ctx, grade)
	return err
}

func (r *GradeRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *GradeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
