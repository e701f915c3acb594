package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"manuparts/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBooking relies on the unique natural-key index instead of a
// read-then-write existence check, so concurrent identical submissions
// cannot both insert.
func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Collection(collBookings).InsertOne(ctx, booking)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (s *Store) FindBookingByKey(ctx context.Context, key models.NaturalKey) (*models.Booking, error) {
	filter := bson.D{
		{Key: "productId", Value: key.ProductID},
		{Key: "quantity", Value: key.Quantity},
		{Key: "clientEmail", Value: key.ClientEmail},
	}

	var booking models.Booking
	err := s.db.Collection(collBookings).FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking by key: %w", err)
	}
	return &booking, nil
}

func (s *Store) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Collection(collBookings).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", id.Hex(), err)
	}
	return &booking, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.listBookings(ctx, bson.D{})
}

func (s *Store) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.listBookings(ctx, bson.D{{Key: "clientEmail", Value: email}})
}

func (s *Store) listBookings(ctx context.Context, filter bson.D) ([]models.Booking, error) {
	cursor, err := s.db.Collection(collBookings).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}
