package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"manuparts/internal/domain"
	"manuparts/internal/models"

	"github.com/rs/zerolog"
)

// FailoverProductCache prefers the primary (redis) cache and falls back to
// the in-process cache while the primary is unreachable. It retries the
// primary after a minute.
type FailoverProductCache struct {
	primary   domain.ProductCache
	fallback  domain.ProductCache
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nanos
}

func NewFailoverProductCache(primary, fallback domain.ProductCache, logger *zerolog.Logger) *FailoverProductCache {
	return &FailoverProductCache{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (c *FailoverProductCache) GetProducts(ctx context.Context) ([]models.Product, error) {
	if !c.isDown.Load() {
		products, err := c.primary.GetProducts(ctx)
		if err == nil || errors.Is(err, ErrCacheMiss) {
			return products, err
		}
		c.markDown(err)
	}

	if c.shouldRetry() {
		products, err := c.primary.GetProducts(ctx)
		if err == nil || errors.Is(err, ErrCacheMiss) {
			c.isDown.Store(false)
			return products, err
		}
		c.lastCheck.Store(time.Now().UnixNano())
	}

	return c.fallback.GetProducts(ctx)
}

func (c *FailoverProductCache) SetProducts(ctx context.Context, products []models.Product) error {
	if !c.isDown.Load() {
		if err := c.primary.SetProducts(ctx, products); err == nil {
			return nil
		} else {
			c.markDown(err)
		}
	}
	return c.fallback.SetProducts(ctx, products)
}

func (c *FailoverProductCache) Invalidate(ctx context.Context) error {
	// Invalidate both sides; a stale fallback entry would otherwise survive a
	// primary recovery.
	var primaryErr error
	if !c.isDown.Load() {
		if primaryErr = c.primary.Invalidate(ctx); primaryErr != nil {
			c.markDown(primaryErr)
		}
	}
	if err := c.fallback.Invalidate(ctx); err != nil {
		return err
	}
	return nil
}

func (c *FailoverProductCache) markDown(err error) {
	if c.logger != nil {
		c.logger.Error().Err(err).Msg("Primary product cache failed, falling back to memory")
	}
	c.isDown.Store(true)
	c.lastCheck.Store(time.Now().UnixNano())
}

func (c *FailoverProductCache) shouldRetry() bool {
	return c.isDown.Load() && time.Since(time.Unix(0, c.lastCheck.Load())) > time.Minute
}
