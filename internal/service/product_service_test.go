package service

import (
	"context"
	"testing"

	"manuparts/internal/cache"
	"manuparts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListProductsCacheHit(t *testing.T) {
	repo := new(MockProductRepository)
	productCache := new(MockProductCache)
	svc := NewProductService(repo, productCache, nil)

	cached := []models.Product{{Name: "Hex Bolt M8"}}
	productCache.On("GetProducts", mock.Anything).Return(cached, nil)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, products)
	repo.AssertNotCalled(t, "ListProducts", mock.Anything)
}

func TestListProductsCacheMiss(t *testing.T) {
	repo := new(MockProductRepository)
	productCache := new(MockProductCache)
	svc := NewProductService(repo, productCache, nil)

	stored := []models.Product{{Name: "Flange Coupling"}}
	productCache.On("GetProducts", mock.Anything).Return(nil, cache.ErrCacheMiss)
	repo.On("ListProducts", mock.Anything).Return(stored, nil)
	productCache.On("SetProducts", mock.Anything, stored).Return(nil)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, products)
	productCache.AssertExpectations(t)
}

func TestListProductsNoCache(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, nil, nil)

	stored := []models.Product{{Name: "Hex Bolt M8"}}
	repo.On("ListProducts", mock.Anything).Return(stored, nil)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, products)
}

func TestCreateProductInvalidatesCache(t *testing.T) {
	repo := new(MockProductRepository)
	productCache := new(MockProductCache)
	svc := NewProductService(repo, productCache, nil)

	product := &models.Product{Name: "Hex Bolt M8", Price: 0.45}
	repo.On("CreateProduct", mock.Anything, product).Return(nil)
	productCache.On("Invalidate", mock.Anything).Return(nil)

	require.NoError(t, svc.CreateProduct(context.Background(), product))
	productCache.AssertExpectations(t)
}

func TestGetProductInvalidID(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, nil, nil)

	_, err := svc.GetProduct(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrInvalidID)
	repo.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}
