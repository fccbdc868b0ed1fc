// internal/store/store.go
package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// maxListedCollections caps the diagnostic collection listing.
const maxListedCollections = 10

// Store wraps a document database with collection-scoped insert and
// filtered-find operations. Documents cross this boundary as bson.M only;
// callers convert them into typed models immediately.
//
// A Store built over a nil database is a legal degraded state: reads
// return empty results and writes fail with ErrUnavailable.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Connected reports whether a database handle is configured. Diagnostic
// only; operations check for themselves.
func (s *Store) Connected() bool {
	return s.db != nil
}

// Insert serializes doc into the named collection and returns the
// store-generated identifier in its hex text form.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %q: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %q: unexpected identifier type %T", collection, res.InsertedID)
	}

	logrus.WithFields(logrus.Fields{
		"collection": collection,
		"id":         oid.Hex(),
	}).Debug("Document inserted")

	return oid.Hex(), nil
}

// FindMany returns every document in the named collection matching the
// exact-match filter, in store order. An empty filter returns the whole
// collection. The result is never nil.
func (s *Store) FindMany(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if s.db == nil {
		return []bson.M{}, nil
	}

	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %q: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode results from %q: %w", collection, err)
	}

	return docs, nil
}

// Count reports the number of documents in the named collection; 0 when
// no store is configured.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	if s.db == nil {
		return 0, nil
	}

	count, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %q: %w", collection, err)
	}

	return count, nil
}

// ListCollections returns up to ten collection names for the diagnostic
// endpoint.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return []string{}, nil
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}

	return names, nil
}
