// FILE: internal/pkg/payments/stripe_gateway.go
package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/subscription"
)

// StripeGateway drives Stripe hosted Checkout in subscription mode. Prices
// are created inline (price_data) so the catalog never has to be mirrored
// into Stripe products, except for one umbrella product used when replacing
// subscription items.
type StripeGateway struct {
	secretKey string
	productId string
	currency  string
}

type StripeConfig struct {
	SecretKey string
	ProductId string
	Currency  string
}

func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.SecretKey != "" {
		stripe.Key = cfg.SecretKey
	}
	return &StripeGateway{
		secretKey: cfg.SecretKey,
		productId: cfg.ProductId,
		currency:  cfg.Currency,
	}
}

// Configured reports whether a secret key was supplied.
func (g *StripeGateway) Configured() bool {
	return g.secretKey != ""
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, input CreateSessionInput) (*Session, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(item.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String("month"),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(input.SuccessURL),
		CancelURL:  stripe.String(input.CancelURL),
		LineItems:  lineItems,
		Metadata:   input.Metadata,
	}
	if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	return g.toSession(sess), nil
}

func (g *StripeGateway) GetCheckoutSession(ctx context.Context, sessionId string) (*Session, error) {
	if !g.Configured() {
		return nil, ErrNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	sess, err := session.Get(sessionId, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to retrieve checkout session %s: %w", sessionId, err)
	}

	return g.toSession(sess), nil
}

// ReplaceSubscriptionItems swaps every item on a live subscription for the
// given set, in one update call so billing never sees a half-replaced state.
func (g *StripeGateway) ReplaceSubscriptionItems(ctx context.Context, subscriptionId string, items []LineItem) error {
	if !g.Configured() {
		return ErrNotConfigured
	}

	current, err := subscription.Get(subscriptionId, nil)
	if err != nil {
		return fmt.Errorf("stripe: failed to retrieve subscription %s: %w", subscriptionId, err)
	}

	var itemParams []*stripe.SubscriptionItemsParams
	if current.Items != nil {
		for _, existing := range current.Items.Data {
			itemParams = append(itemParams, &stripe.SubscriptionItemsParams{
				ID:      stripe.String(existing.ID),
				Deleted: stripe.Bool(true),
			})
		}
	}
	for _, item := range items {
		itemParams = append(itemParams, &stripe.SubscriptionItemsParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.SubscriptionItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				Product:    stripe.String(g.productId),
				UnitAmount: stripe.Int64(item.AmountCents),
				Recurring: &stripe.SubscriptionItemPriceDataRecurringParams{
					Interval: stripe.String("month"),
				},
			},
		})
	}

	params := &stripe.SubscriptionParams{
		Items:             itemParams,
		ProrationBehavior: stripe.String("create_prorations"),
	}
	params.Context = ctx

	if _, err := subscription.Update(subscriptionId, params); err != nil {
		return fmt.Errorf("stripe: failed to update subscription %s: %w", subscriptionId, err)
	}
	return nil
}

func (g *StripeGateway) CancelSubscription(ctx context.Context, subscriptionId string) error {
	if !g.Configured() {
		return ErrNotConfigured
	}

	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	if _, err := subscription.Cancel(subscriptionId, params); err != nil {
		return fmt.Errorf("stripe: failed to cancel subscription %s: %w", subscriptionId, err)
	}
	return nil
}

func (g *StripeGateway) toSession(sess *stripe.CheckoutSession) *Session {
	out := &Session{
		Id:            sess.ID,
		URL:           sess.URL,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		Metadata:      sess.Metadata,
	}
	if sess.Customer != nil {
		out.CustomerId = sess.Customer.ID
	}
	if sess.Subscription != nil {
		out.SubscriptionId = sess.Subscription.ID
	}
	return out
}
