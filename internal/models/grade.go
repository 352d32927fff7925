package models

// GradeDefinition is one rung of a subject's rank ladder. GradeName is the
// unique key within the subject; DisplayOrder defines adjacency, and the
// highest DisplayOrder is the terminal rank.
type GradeDefinition struct {
	ID                      string `bson:"_id,omitempty" json:"id"`
	SubjectID               string `bson:"subject_id" json:"subject_id"`
	GradeName               string `bson:"grade_name" json:"grade_name"`
	DisplayOrder            int    `bson:"display_order" json:"display_order"`
	StartID                 int    `bson:"start_id" json:"start_id"` // inclusive question-id range
	EndID                   int    `bson:"end_id" json:"end_id"`
	NumQuestions            int    `bson:"num_questions" json:"num_questions"`
	PassScore               int    `bson:"pass_score" json:"pass_score"` // 0..100
	RequiredConsecutiveDays int    `bson:"required_consecutive_days" json:"required_consecutive_days"`
}
