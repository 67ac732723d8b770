// Package payment wraps the external payment processor behind a small
// interface so services can be tested without network access.
package payment

import (
	"context"
	"errors"
)

// ErrUpstream marks failures reported by, or while reaching, the payment
// processor. No retry is attempted and no idempotency key is attached, so a
// network failure after the request was sent can leave a duplicate intent on
// the processor side.
var ErrUpstream = errors.New("payment processor failure")

// Provider requests payment authorizations from an external processor.
// CreateIntent takes the amount in minor currency units and a human-readable
// description, and returns the opaque client secret the frontend uses to
// complete the payment.
type Provider interface {
	CreateIntent(ctx context.Context, amountCents int64, description string) (string, error)
}
