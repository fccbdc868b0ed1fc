// internal/services/fake_store_test.go
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory DocumentStore with exact-match filtering,
// mirroring the adapter contract closely enough for service tests.
type fakeStore struct {
	collections map[string][]bson.M
	insertErr   error
	findErr     error
	countErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string][]bson.M)}
}

func (f *fakeStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	m["_id"] = id
	f.collections[collection] = append(f.collections[collection], m)
	return id.Hex(), nil
}

func (f *fakeStore) FindMany(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	docs := []bson.M{}
	for _, doc := range f.collections[collection] {
		matches := true
		for k, v := range filter {
			if doc[k] != v {
				matches = false
				break
			}
		}
		if matches {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (f *fakeStore) Count(ctx context.Context, collection string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.collections[collection])), nil
}

func (f *fakeStore) ListCollections(ctx context.Context) ([]string, error) {
	names := []string{}
	for name := range f.collections {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeStore) Connected() bool {
	return true
}
