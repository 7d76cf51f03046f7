// FILE: internal/pkg/payments/gateway.go
package payments

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means no processor credentials were supplied. Callers
	// turn this into a friendly 503 rather than a stack trace.
	ErrNotConfigured = errors.New("payment gateway is not configured")
)

// LineItem is one recurring monthly charge on a hosted checkout.
type LineItem struct {
	Name        string
	AmountCents int64
	Quantity    int64
}

// CreateSessionInput describes a hosted checkout session to be created.
type CreateSessionInput struct {
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	LineItems     []LineItem
	Metadata      map[string]string
}

// Session is the gateway's view of a checkout session, after creation or
// retrieval.
type Session struct {
	Id             string
	URL            string
	Status         string
	PaymentStatus  string
	CustomerId     string
	SubscriptionId string
	Metadata       map[string]string
}

// Gateway abstracts the payment processor. The Stripe implementation is the
// only real one; tests use fakes.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, input CreateSessionInput) (*Session, error)
	GetCheckoutSession(ctx context.Context, sessionId string) (*Session, error)
	ReplaceSubscriptionItems(ctx context.Context, subscriptionId string, items []LineItem) error
	CancelSubscription(ctx context.Context, subscriptionId string) error
}
