package models

// Subject groups questions, a grade ladder and per-student progress rows.
type Subject struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Active      bool   `bson:"active" json:"active"`
}
