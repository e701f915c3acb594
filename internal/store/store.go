package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"manuparts/internal/config"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

const (
	collProducts = "products"
	collBookings = "bookings"
	collUsers    = "users"
	collReviews  = "reviews"
)

// Store owns the Mongo client for the process. It is created once at startup
// and closed on shutdown; handlers receive it through the service layer.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

func Connect(ctx context.Context, cfg config.MongoConfig, logger *zerolog.Logger) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	var log zerolog.Logger
	if logger != nil {
		log = logger.With().Str("component", "store").Logger()
	}

	s := &Store{
		client: client,
		db:     client.Database(cfg.Database),
		log:    log,
	}

	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	s.log.Info().Str("database", cfg.Database).Msg("mongo connected")
	return s, nil
}

// ensureIndexes creates the unique indexes the write paths rely on:
// one user document per email, one booking per natural key.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = s.db.Collection(collBookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "quantity", Value: 1},
			{Key: "clientEmail", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create bookings natural key index: %w", err)
	}

	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
