// internal/services/order_service.go
package services

import (
	"context"

	"github.com/threadly/clothing-store-backend/internal/models"
)

type OrderService struct {
	store DocumentStore
}

func NewOrderService(store DocumentStore) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder persists a validated order and returns the generated
// identifier. Totals are stored as supplied; there is no server-side
// recomputation against the items.
func (s *OrderService) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	return s.store.Insert(ctx, models.CollectionOrder, order)
}
