package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Instructor is the nested instructor block on a course document.
type Instructor struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Course is a document in the courses collection. Only the fields the
// API interprets (search, instructor filter, status update) are typed;
// everything else is opaque pass-through in Extra.
type Course struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Category   string                 `bson:"category,omitempty"`
	Instructor Instructor             `bson:"instructor,omitempty"`
	Rating     float64                `bson:"rating,omitempty"`
	Status     string                 `bson:"status,omitempty"`
	Extra      map[string]interface{} `bson:",inline"`
}

func (c Course) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(c.Extra)+5)
	for k, v := range c.Extra {
		doc[k] = v
	}
	if !c.ID.IsZero() {
		doc["_id"] = c.ID.Hex()
	}
	if c.Category != "" {
		doc["category"] = c.Category
	}
	if c.Instructor != (Instructor{}) {
		doc["instructor"] = c.Instructor
	}
	if c.Rating != 0 {
		doc["rating"] = c.Rating
	}
	if c.Status != "" {
		doc["status"] = c.Status
	}
	return json.Marshal(doc)
}
