// Package storetest provides an in-memory implementation of the repository
// interfaces for handler and service tests.
package storetest

import (
	"context"
	"sync"
	"time"

	"manuparts/internal/domain"
	"manuparts/internal/models"
	"manuparts/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Memory struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
	bookings map[primitive.ObjectID]models.Booking
	users    map[string]models.User
	reviews  []models.Review
}

func NewMemory() *Memory {
	return &Memory{
		products: make(map[primitive.ObjectID]models.Product),
		bookings: make(map[primitive.ObjectID]models.Booking),
		users:    make(map[string]models.User),
	}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) ListProductNames(ctx context.Context) ([]models.ProductName, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.ProductName, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, models.ProductName{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (m *Memory) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *Memory) CreateProduct(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	m.products[product.ID] = *product
	return nil
}

func (m *Memory) CreateBooking(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := booking.NaturalKey()
	for _, b := range m.bookings {
		if b.NaturalKey() == key {
			return store.ErrDuplicate
		}
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *Memory) FindBookingByKey(ctx context.Context, key models.NaturalKey) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.NaturalKey() == key {
			out := b
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) GetBooking(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &b, nil
}

func (m *Memory) ListBookings(ctx context.Context) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *Memory) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.ClientEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *Memory) UpsertUser(ctx context.Context, email string, profile models.Profile) (*domain.UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[email]
	if !exists {
		user = models.User{ID: primitive.NewObjectID(), Email: email}
	}
	if profile.Name != "" {
		user.Name = profile.Name
	}
	if profile.Education != "" {
		user.Education = profile.Education
	}
	if profile.Location != "" {
		user.Location = profile.Location
	}
	if profile.Phone != "" {
		user.Phone = profile.Phone
	}
	if profile.LinkedIn != "" {
		user.LinkedIn = profile.LinkedIn
	}
	user.UpdatedAt = time.Now().UTC()
	m.users[email] = user

	res := &domain.UpsertResult{}
	if exists {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	} else {
		res.UpsertedID = user.ID
	}
	return res, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (m *Memory) ListUsers(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *Memory) SetUserRole(ctx context.Context, email, role string) (*domain.UpsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return &domain.UpsertResult{}, nil
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	m.users[email] = u
	return &domain.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *Memory) CreateReview(ctx context.Context, review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *Memory) ListReviews(ctx context.Context) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Review, len(m.reviews))
	copy(out, m.reviews)
	return out, nil
}
