package models

import "time"

// QuizRecord is one finished quiz attempt. Records are append-only; the
// stored score and pass flag are the server-verified values, never the
// client's own computation. Answer indices are 0-based.
type QuizRecord struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	StudentID      string    `bson:"student_id" json:"student_id"`
	SubjectID      string    `bson:"subject_id" json:"subject_id"`
	Grade          string    `bson:"grade" json:"grade"`
	Score          int       `bson:"score" json:"score"` // 0..100
	Passed         bool      `bson:"passed" json:"passed"`
	QuestionIDs    []int     `bson:"question_ids" json:"question_ids"`
	StudentAnswers []int     `bson:"student_answers" json:"student_answers"`
	CorrectAnswers []int     `bson:"correct_answers" json:"correct_answers"`
	TakenAt        time.Time `bson:"taken_at" json:"taken_at"`
}
