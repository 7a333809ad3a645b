package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order. Price is the unit price captured by
// the client when the line was added.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity"  json:"quantity"`
	Price     float64            `bson:"price"     json:"price"`
}

// Order is immutable once stored. TotalAmount is taken from the client
// as-is; it is not recomputed from item prices.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId"        json:"userId"`
	Items       []OrderItem        `bson:"items"         json:"items"`
	TotalAmount float64            `bson:"totalAmount"   json:"totalAmount"`
	OrderDate   time.Time          `bson:"orderDate"     json:"orderDate"`
}

func (o Order) GetID() primitive.ObjectID { return o.ID }

func (o Order) WithID(id primitive.ObjectID) Order {
	o.ID = id
	return o
}

// OrderItemInput is one line of an OrderInput.
type OrderItemInput struct {
	ProductID string   `json:"productId" validate:"required,objectid"`
	Quantity  int      `json:"quantity"  validate:"required,min=1"`
	Price     *float64 `json:"price"     validate:"required"`
}

// OrderInput is the POST /orders payload. OrderDate defaults to now.
type OrderInput struct {
	UserID      string           `json:"userId"      validate:"required,objectid"`
	Items       []OrderItemInput `json:"items"       validate:"dive"`
	TotalAmount *float64         `json:"totalAmount" validate:"required"`
	OrderDate   *time.Time       `json:"orderDate,omitempty"`
}
