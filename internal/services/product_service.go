// internal/services/product_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/threadly/clothing-store-backend/internal/models"
)

type ProductService struct {
	store DocumentStore
}

// ProductSearchParams are the browse filters. Zero values mean "no
// constraint": an absent category or featured flag does not narrow the
// result set, and an empty query matches every product.
type ProductSearchParams struct {
	Query    string
	Category string
	Featured *bool
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Featured    bool     `json:"featured,omitempty"`
}

func NewProductService(store DocumentStore) *ProductService {
	return &ProductService{store: store}
}

// StoreFilter builds the exact-match filter pushed down to the store.
// Only supplied parameters appear; the free-text query never does, it is
// applied in-process afterwards.
func (p ProductSearchParams) StoreFilter() bson.M {
	filter := bson.M{}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.Featured != nil {
		filter["featured"] = *p.Featured
	}
	return filter
}

// MatchesQuery reports whether a product survives the free-text pass:
// the lowercased query must be a substring of the lowercased title or
// description. An empty query matches everything, including products
// with no description.
func MatchesQuery(product models.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(product.Title), q) ||
		strings.Contains(strings.ToLower(product.Description), q)
}

// ListProducts fetches products matching the exact-match filter, then
// narrows them with the free-text pass. Store order is preserved; the
// result is never nil.
func (s *ProductService) ListProducts(ctx context.Context, params ProductSearchParams) ([]models.Product, error) {
	docs, err := s.store.FindMany(ctx, models.CollectionProduct, params.StoreFilter())
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := productFromDocument(doc)
		if err != nil {
			return nil, err
		}
		if !MatchesQuery(product, params.Query) {
			continue
		}
		products = append(products, product)
	}

	return products, nil
}

// GetProduct looks up a single product by its hex identifier.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	docs, err := s.store.FindMany(ctx, models.CollectionProduct, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrProductNotFound
	}

	product, err := productFromDocument(docs[0])
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct persists a new product after applying the schema
// defaults. Validation happens at the handler boundary, before this is
// called.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (string, error) {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     inStock,
		Image:       req.Image,
		Images:      req.Images,
		Colors:      req.Colors,
		Sizes:       req.Sizes,
		Rating:      req.Rating,
		Featured:    req.Featured,
	}
	product.ApplyDefaults()

	return s.store.Insert(ctx, models.CollectionProduct, product)
}

// productFromDocument converts a store document into the typed model.
// The store-internal _id decodes into the ID field, whose JSON form is
// the hex text identifier; the raw _id never leaks past this point.
func productFromDocument(doc bson.M) (models.Product, error) {
	var product models.Product

	data, err := bson.Marshal(doc)
	if err != nil {
		return product, fmt.Errorf("encode product document: %w", err)
	}
	if err := bson.Unmarshal(data, &product); err != nil {
		return product, fmt.Errorf("decode product document: %w", err)
	}

	product.ApplyDefaults()
	return product, nil
}
