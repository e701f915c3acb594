package service

import (
	"context"
	"errors"
	"math"

	"manuparts/internal/domain"
	"manuparts/internal/metrics"
)

var ErrInvalidPrice = errors.New("price must be positive")

type PaymentService struct {
	gateway  domain.PaymentGateway
	currency string
}

func NewPaymentService(gateway domain.PaymentGateway, currency string) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{gateway: gateway, currency: currency}
}

// CreateIntent converts a major-unit price to the gateway's minor units
// (19.99 → 1999) and returns the client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", ErrInvalidPrice
	}

	amount := int64(math.Round(price * 100))
	secret, err := s.gateway.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		return "", err
	}

	metrics.IncPaymentIntent()
	return secret, nil
}
