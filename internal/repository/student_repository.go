package repository

import (
	"context"

	"grade-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentRepository struct {
	Col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{Col: db.Collection("students")}
}

// FindAll returns students in register order: year, class, number.
func (r *StudentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: 1},
		{Key: "class", Value: 1},
		{Key: "number", Value: 1},
	})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var students []models.Student
	for cur.Next(ctx) {
		var s models.Student
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	_, err := r.Col.InsertOne(ctx, student)
	return err
}

func (r *StudentRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
