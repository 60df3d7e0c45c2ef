package clients

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// PaymentGateway abstracts payment-intent creation so handlers and tests
// never touch the SDK directly.
type PaymentGateway interface {
	CreatePaymentIntent(amount int64, currency string) (string, error)
}

// StripeClient implements PaymentGateway using the Stripe SDK.
type StripeClient struct {
	API *client.API
}

// NewStripeClient creates a Stripe-backed gateway client with the given
// secret key.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{API: api}
}

// CreatePaymentIntent requests a card-payable intent for the given minor-unit
// amount and returns its client secret verbatim. There is no retry; the SDK's
// own timeout behavior propagates unchanged.
func (s *StripeClient) CreatePaymentIntent(amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.API.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
