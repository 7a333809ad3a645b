package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products on the menu.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name"          json:"name"`
	Description string             `bson:"description"   json:"description"`
}

func (c Category) GetID() primitive.ObjectID { return c.ID }

func (c Category) WithID(id primitive.ObjectID) Category {
	c.ID = id
	return c
}

// CategoryInput is the POST /categories payload.
type CategoryInput struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CategoryPatch is the PUT /categories/{id} payload.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"        validate:"nullable,filled"`
	Description *string `json:"description,omitempty" validate:"nullable,filled"`
}
