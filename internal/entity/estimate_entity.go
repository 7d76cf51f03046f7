// FILE: internal/entity/estimate_entity.go
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EstimateStatus string
type EstimatePaymentStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusSent      EstimateStatus = "sent"
	EstimateStatusAccepted  EstimateStatus = "accepted"
	EstimateStatusActive    EstimateStatus = "active"
	EstimateStatusPaused    EstimateStatus = "paused"
	EstimateStatusCancelled EstimateStatus = "cancelled"

	EstimatePaymentPending    EstimatePaymentStatus = "pending"
	EstimatePaymentPaid       EstimatePaymentStatus = "paid"
	EstimatePaymentPaidOnFile EstimatePaymentStatus = "paid_on_file"
)

// ValidEstimateStatus reports whether s names a known estimate state.
func ValidEstimateStatus(s string) bool {
	switch EstimateStatus(s) {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusAccepted,
		EstimateStatusActive, EstimateStatusPaused, EstimateStatusCancelled:
		return true
	}
	return false
}

// CustomerMaySetStatus limits the states a customer can move their own
// estimate into. Everything else is admin territory.
func CustomerMaySetStatus(s EstimateStatus) bool {
	switch s {
	case EstimateStatusAccepted, EstimateStatusPaused, EstimateStatusCancelled:
		return true
	}
	return false
}

// EstimateLineItem is one priced line of a custom estimate.
type EstimateLineItem struct {
	Description string  `json:"description"`
	Frequency   string  `json:"frequency"`
	Quantity    int     `json:"quantity"`
	MonthlyRate float64 `json:"monthlyRate"`
	LineTotal   float64 `json:"lineTotal"`
	Notes       string  `json:"notes,omitempty"`
}

// NormalizeLineItems drops lines without a description, floors quantity at 1
// and negative rates at 0, and recomputes each line total.
func NormalizeLineItems(items []EstimateLineItem) []EstimateLineItem {
	out := make([]EstimateLineItem, 0, len(items))
	for _, it := range items {
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		if it.MonthlyRate < 0 {
			it.MonthlyRate = 0
		}
		it.LineTotal = RoundCents(float64(it.Quantity) * it.MonthlyRate)
		out = append(out, it)
	}
	return out
}

// EstimateTotals computes subtotal and total. The monthly adjustment may be
// negative (a discount) and is part of the subtotal; total is an alias of
// subtotal, kept separate in case the two ever diverge.
func EstimateTotals(items []EstimateLineItem, adjustment float64) (subtotal, total float64) {
	for _, it := range items {
		subtotal += it.LineTotal
	}
	subtotal = RoundCents(subtotal + adjustment)
	total = subtotal
	return subtotal, total
}

// CustomEstimate is an admin-authored offer for work the self-service catalog
// cannot express: multiple addresses, bespoke line items, manual discounts.
type CustomEstimate struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	CreatedByEmail       string
	Status               EstimateStatus
	PaymentStatus        EstimatePaymentStatus
	LineItems            []EstimateLineItem
	MonthlyAdjustment    float64
	Subtotal             float64
	Total                float64
	Addresses            []ServiceAddress
	Notes                string
	AdminNotes           string
	PreferredServiceDay  string
	StripeSubscriptionId *string
	AcceptedAt           *time.Time
	PaidAt               *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
