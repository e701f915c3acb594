package payments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates payment intents restricted to card payment methods.
type StripeGateway struct {
	api *client.API
	log zerolog.Logger
}

func NewStripeGateway(secretKey string, logger *zerolog.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	var log zerolog.Logger
	if logger != nil {
		log = logger.With().Str("component", "stripe").Logger()
	}
	return &StripeGateway{api: api, log: log}
}

// CreateIntent requests a payment intent for an amount already converted to
// minor currency units and returns the client secret the frontend needs to
// complete the charge.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	g.log.Info().Str("intent_id", intent.ID).Int64("amount", amount).Str("currency", currency).
		Msg("payment intent created")
	return intent.ClientSecret, nil
}
