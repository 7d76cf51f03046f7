// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// ValidSubscriptionStatus reports whether s is one of the known states.
// Unknown values coming from a PATCH are ignored rather than stored.
func ValidSubscriptionStatus(s string) bool {
	switch SubscriptionStatus(s) {
	case SubscriptionStatusActive, SubscriptionStatusPaused, SubscriptionStatusCancelled:
		return true
	}
	return false
}

// Subscription is the local mirror of a recurring service agreement. One row
// per processor subscription: finalize upserts on StripeSubscriptionId.
type Subscription struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	StripeSubscriptionId *string
	Services             []SelectedService
	Address              ServiceAddress
	PlanId               string
	PlanName             string
	MonthlyTotal         float64
	AccessNotes          string
	PreferredServiceDay  string
	Status               SubscriptionStatus
	StripeStatus         string
	StripePaymentStatus  string
	StripeCustomerId     string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
