// internal/services/services.go
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentStore is the slice of the store adapter the services need.
// *store.Store satisfies it; tests substitute an in-memory fake.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	FindMany(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	Count(ctx context.Context, collection string) (int64, error)
	ListCollections(ctx context.Context) ([]string, error)
	Connected() bool
}

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)
