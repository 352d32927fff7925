package models

// Student is a portal account managed by teachers. Year/Class/Number mirror
// the school register and are the leading columns of every CSV export.
type Student struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Email  string `bson:"email" json:"email"`
	Year   int    `bson:"year" json:"year"`
	Class  string `bson:"class" json:"class"`
	Number int    `bson:"number" json:"number"`
	Name   string `bson:"name" json:"name"`
}
