package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a document in the students collection. Only the email and
// createdAt are owned by the server; every other field (name, college,
// phone, ...) is stored as sent. Profile["college"] holds the college's
// name, not its id, so lookups match on College.CollegeName.
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
	Profile   bson.M             `bson:",inline"`
}
