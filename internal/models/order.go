// internal/models/order.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a point-in-time snapshot of a product at purchase time.
// ProductID is an opaque reference with no enforced integrity; the
// snapshot fields stay stable even if the product changes later.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Title     string  `json:"title" bson:"title" validate:"required"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"required,gte=1"`
	Color     string  `json:"color,omitempty" bson:"color,omitempty"`
	Size      string  `json:"size,omitempty" bson:"size,omitempty"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
}

// Order totals are caller-supplied and not recomputed server-side.
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Items         []OrderItem        `json:"items" bson:"items" validate:"required,min=1,dive"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Shipping      float64            `json:"shipping" bson:"shipping" validate:"gte=0"`
	Total         float64            `json:"total" bson:"total" validate:"gte=0"`
	CustomerName  string             `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	CustomerEmail string             `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
}
