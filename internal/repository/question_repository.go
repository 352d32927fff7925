package repository

import (
	"context"

	"grade-portal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindBySubject(ctx context.Context, subjectID string) ([]models.Question, error) {
	return r.find(ctx, bson.M{"subject_id": subjectID})
}

// FindByRange returns the subject's questions with question_id inside the
// inclusive [startID, endID] range of a grade definition.
func (r *QuestionRepository) FindByRange(ctx context.Context, subjectID string, startID, endID int) ([]models.Question, error) {
	return r.find(ctx, bson.M{
		"subject_id":  subjectID,
		"question_id": bson.M{"$gte": startID, "$lte": endID},
	})
}

// FindByQuestionIDs returns the subject's questions matching the given
// teacher-facing ids, in storage order.
func (r *QuestionRepository) FindByQuestionIDs(ctx context.Context, subjectID string, questionIDs []int) ([]models.Question, error) {
	return r.find(ctx, bson.M{
		"subject_id":  subjectID,
		"question_id": bson.M{"$in": questionIDs},
	})
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByQuestionID(ctx context.Context, subjectID string, questionID int) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"subject_id": subjectID, "question_id": questionID}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *QuestionRepository) find(ctx context.Context, filter bson.M) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
