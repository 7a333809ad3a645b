package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Product is a sellable item. CategoryID is an advisory reference: the
// category may have been deleted since.
type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name"          json:"name"`
	CategoryID primitive.ObjectID `bson:"categoryId"    json:"categoryId"`
	Price      float64            `bson:"price"         json:"price"`
	Status     string             `bson:"status"        json:"status"`
}

func (p Product) GetID() primitive.ObjectID { return p.ID }

func (p Product) WithID(id primitive.ObjectID) Product {
	p.ID = id
	return p
}

// CategoryRef is the category snapshot embedded into a ProductView.
type CategoryRef struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
}

// ProductView is a product as returned by the API: categoryId carries the
// resolved category, or null when the reference dangles.
type ProductView struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Category *CategoryRef       `json:"categoryId"`
	Price    float64            `json:"price"`
	Status   string             `json:"status"`
}

// CategoryHex returns the referenced category id, or "" when unresolved.
func (v ProductView) CategoryHex() string {
	if v.Category == nil {
		return ""
	}
	return v.Category.ID.Hex()
}

// ProductInput is the POST /products payload. Status defaults to active.
type ProductInput struct {
	Name       string   `json:"name"       validate:"required"`
	CategoryID string   `json:"categoryId" validate:"required,objectid"`
	Price      *float64 `json:"price"      validate:"required"`
	Status     string   `json:"status"     validate:"nullable,in=active,inactive"`
}

// ProductPatch is the PUT /products/{id} payload.
type ProductPatch struct {
	Name       *string  `json:"name,omitempty"       validate:"nullable,filled"`
	CategoryID *string  `json:"categoryId,omitempty" validate:"nullable,objectid"`
	Price      *float64 `json:"price,omitempty"`
	Status     *string  `json:"status,omitempty"     validate:"nullable,in=active,inactive"`
}
