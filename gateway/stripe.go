package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Intent is the subset of the processor's payment-intent response the
// frontend needs, plus the raw payload for the ledger.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Raw          []byte `json:"-"`
}

// IntentCreator creates a card-payment intent with the external processor.
type IntentCreator interface {
	CreateIntent(amountCents int64, currency string) (*Intent, error)
}

// Stripe talks to the Stripe REST API.
type Stripe struct {
	client *resty.Client
	secret string
}

func NewStripe(secretKey string) *Stripe {
	return &Stripe{
		client: resty.New().SetBaseURL("https://api.stripe.com"),
		secret: secretKey,
	}
}

func (s *Stripe) CreateIntent(amountCents int64, currency string) (*Intent, error) {
	resp, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.secret).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amountCents, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("stripe payment intent failed: %d %s", resp.StatusCode(), resp.String())
	}

	var intent Intent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		return nil, err
	}
	intent.Raw = resp.Body()

	return &intent, nil
}
