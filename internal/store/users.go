package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"manuparts/internal/domain"
	"manuparts/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertUser merges the given profile fields into the document keyed by
// email, creating it if absent. The role field is never written here.
func (s *Store) UpsertUser(ctx context.Context, email string, profile models.Profile) (*domain.UpsertResult, error) {
	set := bson.D{{Key: "email", Value: email}, {Key: "updatedAt", Value: time.Now().UTC()}}
	if profile.Name != "" {
		set = append(set, bson.E{Key: "name", Value: profile.Name})
	}
	if profile.Education != "" {
		set = append(set, bson.E{Key: "education", Value: profile.Education})
	}
	if profile.Location != "" {
		set = append(set, bson.E{Key: "location", Value: profile.Location})
	}
	if profile.Phone != "" {
		set = append(set, bson.E{Key: "phone", Value: profile.Phone})
	}
	if profile.LinkedIn != "" {
		set = append(set, bson.E{Key: "linkedin", Value: profile.LinkedIn})
	}

	res, err := s.db.Collection(collUsers).UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: set}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", email, err)
	}
	return upsertResult(res), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Collection(collUsers).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.db.Collection(collUsers).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *Store) SetUserRole(ctx context.Context, email, role string) (*domain.UpsertResult, error) {
	res, err := s.db.Collection(collUsers).UpdateOne(ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "role", Value: role},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
	)
	if err != nil {
		return nil, fmt.Errorf("set role for %s: %w", email, err)
	}
	return upsertResult(res), nil
}

func upsertResult(res *mongo.UpdateResult) *domain.UpsertResult {
	return &domain.UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}
}
