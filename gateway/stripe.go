package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultStripeAPIURL = "https://api.stripe.com/v1"

// StripeClient talks to the Stripe payment-intents endpoint. Construct it
// once at startup; a nil *StripeClient is a valid Gateway that fails fast
// with ErrNotConfigured, so an unconfigured deployment degrades gracefully
// instead of crashing.
type StripeClient struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewStripeClient returns nil when secretKey is empty.
func NewStripeClient(secretKey string, log *zap.Logger) *StripeClient {
	if secretKey == "" {
		return nil
	}
	return &StripeClient{
		secretKey:  secretKey,
		apiURL:     defaultStripeAPIURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Stripe: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var intent stripeIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse Stripe response: %w", err)
	}
	if intent.Error != nil {
		return nil, fmt.Errorf("stripe error: %s", intent.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("stripe returned empty client secret")
	}

	c.log.Info("created payment intent",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_minor_units", amountMinorUnits),
		zap.String("currency", currency))

	return &Intent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
