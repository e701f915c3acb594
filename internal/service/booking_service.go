package service

import (
	"context"
	"errors"
	"fmt"

	"manuparts/internal/domain"
	"manuparts/internal/metrics"
	"manuparts/internal/models"
	"manuparts/internal/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMissingBookingFields = errors.New("productId, quantity and clientEmail are required")

// AdmissionResult reports whether a submission created a new booking or hit
// an existing one with the same natural key.
type AdmissionResult struct {
	Success bool            `json:"success"`
	Booking *models.Booking `json:"booking"`
}

type BookingService struct {
	repo   domain.BookingRepository
	logger *zerolog.Logger
}

func NewBookingService(repo domain.BookingRepository, logger *zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

// AdmitBooking inserts the booking against the unique natural-key index.
// On a duplicate it returns the previously stored booking instead. The insert
// itself is atomic, so two concurrent identical submissions cannot both win.
func (s *BookingService) AdmitBooking(ctx context.Context, booking *models.Booking) (*AdmissionResult, error) {
	if booking.ProductID == "" || booking.Quantity <= 0 || booking.ClientEmail == "" {
		return nil, ErrMissingBookingFields
	}

	err := s.repo.CreateBooking(ctx, booking)
	if errors.Is(err, store.ErrDuplicate) {
		existing, findErr := s.repo.FindBookingByKey(ctx, booking.NaturalKey())
		if findErr != nil {
			return nil, fmt.Errorf("load existing booking: %w", findErr)
		}
		metrics.IncDuplicateBooking()
		if s.logger != nil {
			s.logger.Info().
				Str("product_id", booking.ProductID).
				Str("client_email", booking.ClientEmail).
				Msg("duplicate booking rejected")
		}
		return &AdmissionResult{Success: false, Booking: existing}, nil
	}
	if err != nil {
		return nil, err
	}

	return &AdmissionResult{Success: true, Booking: booking}, nil
}

func (s *BookingService) GetBooking(ctx context.Context, idHex string) (*models.Booking, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetBooking(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.repo.ListBookings(ctx)
}

func (s *BookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.repo.ListBookingsByEmail(ctx, email)
}
