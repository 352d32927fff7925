package repository

import (
	"context"

	"grade-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubjectRepository struct {
	Col *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) *SubjectRepository {
	return &SubjectRepository{Col: db.Collection("subjects")}
}

func (r *SubjectRepository) FindAll(ctx context.Context) ([]models.Subject, error) {
	cur, err := r.Col.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subjects []models.Subject
	for cur.Next(ctx) {
		var s models.Subject
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

func (r *SubjectRepository) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	var subject models.Subject
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&subject)
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	_, err := r.Col.InsertOne(ctx, subject)
	return err
}
