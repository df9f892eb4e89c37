package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a directory entry. Only email and role are read by the workflow.
type User struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string        `bson:"email" json:"email"`
	Role  string        `bson:"role" json:"role"`
}
