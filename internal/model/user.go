package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a document in the users collection. Sign-up payloads carry
// arbitrary profile fields; anything not interpreted here is kept in
// Extra and written back untouched.
type User struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty"`
	Email           string                 `bson:"email,omitempty"`
	EnrolledCourses []string               `bson:"enrolledCourses,omitempty"`
	FavCourses      []string               `bson:"favCourses,omitempty"`
	Extra           map[string]interface{} `bson:",inline"`
}

// MarshalJSON flattens the interpreted fields and the opaque Extra
// fields into a single document, matching what is stored.
func (u User) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(u.Extra)+4)
	for k, v := range u.Extra {
		doc[k] = v
	}
	if !u.ID.IsZero() {
		doc["_id"] = u.ID.Hex()
	}
	if u.Email != "" {
		doc["email"] = u.Email
	}
	if u.EnrolledCourses != nil {
		doc["enrolledCourses"] = u.EnrolledCourses
	}
	if u.FavCourses != nil {
		doc["favCourses"] = u.FavCourses
	}
	return json.Marshal(doc)
}
