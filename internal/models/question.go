package models

// Question is a four-choice question owned by a subject. QuestionID is the
// teacher-facing number, unique within the subject; it stays stable across
// edits while the other fields may be replaced.
type Question struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	SubjectID     string `bson:"subject_id" json:"subject_id"`
	QuestionID    int    `bson:"question_id" json:"question_id"`
	Text          string `bson:"text" json:"text"`
	Choice1       string `bson:"choice_1" json:"choice_1"`
	Choice2       string `bson:"choice_2" json:"choice_2"`
	Choice3       string `bson:"choice_3" json:"choice_3"`
	Choice4       string `bson:"choice_4" json:"choice_4"`
	CorrectAnswer int    `bson:"correct_answer" json:"correct_answer"` // 1-based
}

// CorrectIndex converts the stored 1-based correct answer to the 0-based
// index used by all scoring math. Keeping the conversion here is what stops
// off-by-one mistakes from spreading into the scorer and the exports.
func (q *Question) CorrectIndex() int {
	return q.CorrectAnswer - 1
}

// Choices returns the four choice texts in stored order.
func (q *Question) Choices() []string {
	return []string{q.Choice1, q.Choice2, q.Choice3, q.Choice4}
}
