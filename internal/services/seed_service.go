// internal/services/seed_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/threadly/clothing-store-backend/internal/models"
)

type SeedService struct {
	store DocumentStore
}

type SeedResult struct {
	AlreadySeeded bool
	Inserted      int
}

func NewSeedService(store DocumentStore) *SeedService {
	return &SeedService{store: store}
}

func floatPtr(f float64) *float64 { return &f }

// DemoProducts returns the fixed demonstration catalog, in insert order.
func DemoProducts() []models.Product {
	products := []models.Product{
		{
			Title:       "AeroFlex Tee",
			Description: "Breathable performance tee",
			Price:       floatPtr(29.99),
			Category:    "Tops",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1520975682031-5fdb9186b8a0?q=80&w=1200&auto=format&fit=crop",
			Colors:      []string{"Black", "White", "Navy"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Rating:      floatPtr(4.6),
			Featured:    true,
		},
		{
			Title:       "Contour Jeans",
			Description: "Slim-fit stretch denim",
			Price:       floatPtr(59.0),
			Category:    "Bottoms",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1200&auto=format&fit=crop",
			Colors:      []string{"Indigo", "Black"},
			Sizes:       []string{"28", "30", "32", "34"},
			Rating:      floatPtr(4.4),
			Featured:    true,
		},
		{
			Title:       "Nimbus Hoodie",
			Description: "Cloud-soft fleece hoodie",
			Price:       floatPtr(49.5),
			Category:    "Outerwear",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1542060748-10c28b62716e?q=80&w=1200&auto=format&fit=crop",
			Colors:      []string{"Gray", "Forest", "Sand"},
			Sizes:       []string{"S", "M", "L", "XL"},
			Rating:      floatPtr(4.7),
			Featured:    false,
		},
		{
			Title:       "Stride Sneakers",
			Description: "Lightweight everyday sneakers",
			Price:       floatPtr(79.0),
			Category:    "Footwear",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1520256862855-398228c41684?q=80&w=1200&auto=format&fit=crop",
			Colors:      []string{"White", "Gray"},
			Sizes:       []string{"7", "8", "9", "10", "11"},
			Rating:      floatPtr(4.5),
			Featured:    false,
		},
	}

	for i := range products {
		products[i].ApplyDefaults()
	}
	return products
}

// Seed inserts the demo catalog into an empty product collection. A
// non-empty collection makes it a no-op. The count check and the inserts
// are not atomic: two concurrent calls racing on an empty collection can
// both insert. Partial inserts on failure are not rolled back.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.store.Count(ctx, models.CollectionProduct)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return &SeedResult{AlreadySeeded: true}, nil
	}

	inserted := 0
	for _, product := range DemoProducts() {
		if _, err := s.store.Insert(ctx, models.CollectionProduct, product); err != nil {
			return nil, err
		}
		inserted++
	}

	logrus.WithField("inserted", inserted).Info("Demo products seeded")
	return &SeedResult{Inserted: inserted}, nil
}
