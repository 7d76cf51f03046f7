// FILE: internal/entity/checkout_entity.go
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
	CheckoutStatusCancelled CheckoutStatus = "cancelled"
)

// Terminal reports whether the session reached a final state. Completed and
// cancelled sessions are never mutated again.
func (s CheckoutStatus) Terminal() bool {
	return s == CheckoutStatusCompleted || s == CheckoutStatusCancelled
}

// SelectedService is one line of a customer's cart, snapshotted at checkout
// time so later catalog edits do not change what was sold.
type SelectedService struct {
	ServiceId   string  `json:"serviceId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	MonthlyRate float64 `json:"monthlyRate"`
	Frequency   string  `json:"frequency"`
	Notes       string  `json:"notes,omitempty"`
}

// NormalizeServices drops unusable entries and coerces the rest: an entry
// needs a service id, a name and a frequency; quantity is floored at 1 and
// negative rates at 0.
func NormalizeServices(services []SelectedService) []SelectedService {
	out := make([]SelectedService, 0, len(services))
	for _, svc := range services {
		svc.ServiceId = strings.TrimSpace(svc.ServiceId)
		svc.Name = strings.TrimSpace(svc.Name)
		svc.Frequency = strings.TrimSpace(svc.Frequency)
		if svc.ServiceId == "" || svc.Name == "" || svc.Frequency == "" {
			continue
		}
		if svc.Quantity < 1 {
			svc.Quantity = 1
		}
		if svc.MonthlyRate < 0 {
			svc.MonthlyRate = 0
		}
		out = append(out, svc)
	}
	return out
}

// MonthlyTotal sums quantity times rate across services, rounded to cents.
func MonthlyTotal(services []SelectedService) float64 {
	var total float64
	for _, svc := range services {
		total += float64(svc.Quantity) * svc.MonthlyRate
	}
	return RoundCents(total)
}

// RoundCents rounds a dollar amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CheckoutSession tracks one trip to the hosted payment page. It is created
// PENDING before the processor is called and finalized exactly once.
type CheckoutSession struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	StripeSessionId      *string
	Services             []SelectedService
	Address              ServiceAddress
	PlanId               string
	PlanName             string
	MonthlyTotal         float64
	AccessNotes          string
	PreferredServiceDay  string
	Status               CheckoutStatus
	StripeStatus         string
	StripePaymentStatus  string
	StripeCustomerId     string
	StripeSubscriptionId *string
	CompletedAt          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CheckoutTransaction is the admin view of a completed checkout joined with
// the purchasing user.
type CheckoutTransaction struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	UserEmail       string
	PlanName        string
	MonthlyTotal    float64
	Status          CheckoutStatus
	StripeStatus    string
	StripeSessionId *string
	CreatedAt       time.Time
}
