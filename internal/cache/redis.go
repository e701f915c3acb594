package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"manuparts/internal/config"
	"manuparts/internal/models"

	"github.com/redis/go-redis/v9"
)

const productsKey = "products:all"

// ErrCacheMiss is returned when the cached listing is absent or expired.
var ErrCacheMiss = fmt.Errorf("cache miss")

type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient создает новый клиент Redis на основе конфигурации
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	}

	return redis.NewClient(options)
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisProductCache) GetProducts(ctx context.Context) ([]models.Product, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client is nil")
	}
	val, err := r.client.Get(ctx, productsKey).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get products from redis: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products: %w", err)
	}
	return products, nil
}

func (r *RedisProductCache) SetProducts(ctx context.Context, products []models.Product) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := r.client.Set(ctx, productsKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set products in redis: %w", err)
	}
	return nil
}

func (r *RedisProductCache) Invalidate(ctx context.Context) error {
	if r.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	if err := r.client.Del(ctx, productsKey).Err(); err != nil {
		return fmt.Errorf("failed to delete products from redis: %w", err)
	}
	return nil
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
