package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a customer account that orders are placed for.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name"          json:"name"`
	Email  string             `bson:"email"         json:"email"`
	Mobile string             `bson:"mobile"        json:"mobile"`
}

func (u User) GetID() primitive.ObjectID { return u.ID }

func (u User) WithID(id primitive.ObjectID) User {
	u.ID = id
	return u
}

// UserInput is the POST /users payload.
type UserInput struct {
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
}

// UserPatch is the PUT /users/{id} payload. Nil fields are left untouched.
type UserPatch struct {
	Name   *string `json:"name,omitempty"   validate:"nullable,filled"`
	Email  *string `json:"email,omitempty"  validate:"nullable,filled"`
	Mobile *string `json:"mobile,omitempty" validate:"nullable,filled"`
}
