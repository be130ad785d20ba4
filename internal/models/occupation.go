package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Occupation is the professional profile attached to a user. At most
// one per user, enforced by a unique index on userId.
type Occupation struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Title  string             `bson:"title" json:"title"`
	Years  int                `bson:"years" json:"years"`
}
