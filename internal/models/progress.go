package models

// Progress tracks one student's rank in one subject. It is the only mutable
// record in the model: the streak resets on every fail and on every
// advancement, and LastChallengeDate enforces the once-per-day challenge
// rule. The date is a "2006-01-02" string in the portal's canonical
// timezone, empty until the first challenge.
type Progress struct {
	ID                  string `bson:"_id,omitempty" json:"id"`
	StudentID           string `bson:"student_id" json:"student_id"`
	SubjectID           string `bson:"subject_id" json:"subject_id"`
	CurrentGrade        string `bson:"current_grade" json:"current_grade"`
	ConsecutivePassDays int    `bson:"consecutive_pass_days" json:"consecutive_pass_days"`
	LastChallengeDate   string `bson:"last_challenge_date" json:"last_challenge_date"`
}
