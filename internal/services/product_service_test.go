// internal/services/product_service_test.go
package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadly/clothing-store-backend/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestStoreFilter(t *testing.T) {
	tests := []struct {
		name     string
		params   ProductSearchParams
		expected int
	}{
		{"no params", ProductSearchParams{}, 0},
		{"category only", ProductSearchParams{Category: "Tops"}, 1},
		{"featured only", ProductSearchParams{Featured: boolPtr(true)}, 1},
		{"featured false still filters", ProductSearchParams{Featured: boolPtr(false)}, 1},
		{"category and featured", ProductSearchParams{Category: "Tops", Featured: boolPtr(true)}, 2},
		{"query never pushes down", ProductSearchParams{Query: "denim"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.params.StoreFilter()
			assert.Len(t, filter, tt.expected)
		})
	}

	filter := ProductSearchParams{Category: "Tops", Featured: boolPtr(false)}.StoreFilter()
	assert.Equal(t, "Tops", filter["category"])
	assert.Equal(t, false, filter["featured"])
}

func TestMatchesQuery(t *testing.T) {
	product := models.Product{Title: "AeroFlex Tee", Description: "Breathable performance tee"}

	assert.True(t, MatchesQuery(product, "tee"))
	assert.True(t, MatchesQuery(product, "TEE"))
	assert.True(t, MatchesQuery(product, "breathable"))
	assert.True(t, MatchesQuery(product, "aeroflex t"))
	assert.False(t, MatchesQuery(product, "denim"))

	// Empty query matches everything
	assert.True(t, MatchesQuery(product, ""))

	// Missing description is treated as empty text, not a match failure
	noDesc := models.Product{Title: "Contour Jeans"}
	assert.True(t, MatchesQuery(noDesc, "jeans"))
	assert.False(t, MatchesQuery(noDesc, "denim"))
	assert.True(t, MatchesQuery(noDesc, ""))
}

func seedBrowseFixtures(t *testing.T, fs *fakeStore) {
	t.Helper()

	fixtures := []models.Product{
		{Title: "AeroFlex Tee", Description: "Breathable", Category: "Tops", Featured: true, Price: floatPtr(29.99), InStock: true},
		{Title: "Contour Jeans", Description: "Slim denim", Category: "Bottoms", Featured: true, Price: floatPtr(59), InStock: true},
	}
	for i := range fixtures {
		fixtures[i].ApplyDefaults()
		_, err := fs.Insert(context.Background(), models.CollectionProduct, fixtures[i])
		require.NoError(t, err)
	}
}

func TestListProductsFiltering(t *testing.T) {
	fs := newFakeStore()
	seedBrowseFixtures(t, fs)
	svc := NewProductService(fs)
	ctx := context.Background()

	t.Run("no filters returns everything", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("category exact match", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{Category: "Tops"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "AeroFlex Tee", products[0].Title)
	})

	t.Run("category is not case-insensitive", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{Category: "tops"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("text query narrows on description", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{Query: "denim"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Contour Jeans", products[0].Title)
	})

	t.Run("featured and query compose as AND", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{Query: "tee", Featured: boolPtr(true)})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "AeroFlex Tee", products[0].Title)
	})

	t.Run("empty query returns every product", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{Query: ""})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, ProductSearchParams{Category: "Hats"})
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestListProductsIdentifierPromotion(t *testing.T) {
	fs := newFakeStore()
	seedBrowseFixtures(t, fs)
	svc := NewProductService(fs)

	products, err := svc.ListProducts(context.Background(), ProductSearchParams{})
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.False(t, p.ID.IsZero())
	}

	// The wire form carries a text id and no store-internal _id field.
	body, err := json.Marshal(products)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":"`+products[0].ID.Hex()+`"`)
	assert.NotContains(t, string(body), `"_id"`)
}

func TestGetProduct(t *testing.T) {
	fs := newFakeStore()
	svc := NewProductService(fs)
	ctx := context.Background()

	id, err := fs.Insert(ctx, models.CollectionProduct, models.Product{
		Title: "Nimbus Hoodie", Category: "Outerwear", Price: floatPtr(49.5), InStock: true,
	})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		product, err := svc.GetProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Nimbus Hoodie", product.Title)
		assert.Equal(t, id, product.ID.Hex())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, "ffffffffffffffffffffffff")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, "not-a-hex-id")
		assert.ErrorIs(t, err, ErrInvalidProductID)
	})
}

func TestCreateProductDefaults(t *testing.T) {
	fs := newFakeStore()
	svc := NewProductService(fs)
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, &CreateProductRequest{
		Title:    "Drift Cap",
		Price:    floatPtr(19.99),
		Category: "Accessories",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	product, err := svc.GetProduct(ctx, id)
	require.NoError(t, err)
	assert.True(t, product.InStock, "in_stock should default to true")
	assert.False(t, product.Featured)
	assert.NotNil(t, product.Images)
	assert.NotNil(t, product.Colors)
	assert.NotNil(t, product.Sizes)
	assert.Empty(t, product.Images)
}

func TestCreateProductInStockOverride(t *testing.T) {
	fs := newFakeStore()
	svc := NewProductService(fs)

	id, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		Title:    "Archive Parka",
		Price:    floatPtr(120),
		Category: "Outerwear",
		InStock:  boolPtr(false),
	})
	require.NoError(t, err)

	product, err := svc.GetProduct(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, product.InStock)
}
