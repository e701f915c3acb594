package service

import (
	"context"
	"errors"

	"manuparts/internal/domain"
	"manuparts/internal/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid document id")

type ProductService struct {
	repo   domain.ProductRepository
	cache  domain.ProductCache
	logger *zerolog.Logger
}

func NewProductService(repo domain.ProductRepository, cache domain.ProductCache, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListProducts serves the listing cache-aside: the cache is best effort and a
// failure on either side of it never fails the request.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetProducts(ctx); err == nil {
			return products, nil
		}
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Msg("populate product cache")
		}
	}
	return products, nil
}

func (s *ProductService) ListProductNames(ctx context.Context) ([]models.ProductName, error) {
	return s.repo.ListProductNames(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, idHex string) (*models.Product, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetProduct(ctx, id)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Msg("invalidate product cache")
		}
	}
	return nil
}
