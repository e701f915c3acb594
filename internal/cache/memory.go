package cache

import (
	"context"
	"sync"
	"time"

	"manuparts/internal/models"
)

type MemoryProductCache struct {
	mu        sync.RWMutex
	products  []models.Product
	expiresAt time.Time
	ttl       time.Duration
}

func NewMemoryProductCache(ttl time.Duration) *MemoryProductCache {
	return &MemoryProductCache{ttl: ttl}
}

func (c *MemoryProductCache) GetProducts(ctx context.Context) ([]models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.products == nil || time.Now().After(c.expiresAt) {
		return nil, ErrCacheMiss
	}

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *MemoryProductCache) SetProducts(ctx context.Context, products []models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make([]models.Product, len(products))
	copy(c.products, products)
	c.expiresAt = time.Now().Add(c.ttl)
	return nil
}

func (c *MemoryProductCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	return nil
}
