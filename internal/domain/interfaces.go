package domain

import (
	"context"

	"manuparts/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductNames(ctx context.Context) ([]models.ProductName, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
}

type BookingRepository interface {
	// CreateBooking inserts the booking and returns store.ErrDuplicate when a
	// document with the same natural key already exists.
	CreateBooking(ctx context.Context, booking *models.Booking) error
	FindBookingByKey(ctx context.Context, key models.NaturalKey) (*models.Booking, error)
	GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

// UpsertResult mirrors the write result the store hands back for upserts so
// callers can echo it to API clients.
type UpsertResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

type UserRepository interface {
	UpsertUser(ctx context.Context, email string, profile models.Profile) (*UpsertResult, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, email, role string) (*UpsertResult, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) error
	ListReviews(ctx context.Context) ([]models.Review, error)
}

// PaymentGateway creates a payment intent for an amount in minor currency
// units and returns the gateway-issued client secret.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// ProductCache is a best-effort cache of the full product listing.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	SetProducts(ctx context.Context, products []models.Product) error
	Invalidate(ctx context.Context) error
}
