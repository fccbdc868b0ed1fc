// internal/models/product.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. The ID is assigned by the store at insert
// time; the JSON field is always the hex form, never the raw _id document
// field.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64           `json:"price" bson:"price" validate:"required,gte=0"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Images      []string           `json:"images" bson:"images"`
	Colors      []string           `json:"colors" bson:"colors"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	Rating      *float64           `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Featured    bool               `json:"featured" bson:"featured"`
}

// ApplyDefaults fills the fields the original schema defaulted: slices
// become empty instead of null so list responses stay stable.
func (p *Product) ApplyDefaults() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
}
