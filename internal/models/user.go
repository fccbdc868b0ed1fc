// internal/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is kept for schema completeness; no exposed route writes or reads
// the user collection yet.
type User struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	Email    string             `json:"email" bson:"email" validate:"required,email"`
	Address  string             `json:"address" bson:"address" validate:"required"`
	Age      *int               `json:"age,omitempty" bson:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	IsActive bool               `json:"is_active" bson:"is_active"`
}
