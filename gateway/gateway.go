package gateway

import (
	"context"
	"errors"
)

// ErrNotConfigured signals that no payment gateway credentials are present.
// The payment path must surface this distinctly so the client can show an
// actionable message instead of a generic failure.
var ErrNotConfigured = errors.New("Stripe not configured. Please add STRIPE_SECRET_KEY.")

// Intent is the gateway's handle for an in-progress payment attempt. The
// client secret goes back to the caller to complete authorization
// out-of-band.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents against an external processor. Handlers
// depend on this interface so tests can swap in a fake.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error)
}
