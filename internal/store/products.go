package store

import (
	"context"
	"errors"
	"fmt"

	"manuparts/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.db.Collection(collProducts).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *Store) ListProductNames(ctx context.Context) ([]models.ProductName, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.db.Collection(collProducts).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find product names: %w", err)
	}
	defer cursor.Close(ctx)

	names := []models.ProductName{}
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("decode product names: %w", err)
	}
	return names, nil
}

func (s *Store) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.db.Collection(collProducts).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", id.Hex(), err)
	}
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := s.db.Collection(collProducts).InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}
