package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProvider implements Provider using the Stripe payment-intents API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider creates a provider bound to the given secret key.
func NewStripeProvider(secretKey string) *StripeProvider {
	return &StripeProvider{
		api: client.New(secretKey, nil),
	}
}

// CreateIntent requests a payment intent with automatic payment method
// selection enabled and returns its client secret.
func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, description string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String(description),
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return intent.ClientSecret, nil
}
