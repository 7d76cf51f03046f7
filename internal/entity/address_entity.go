// FILE: internal/entity/address_entity.go
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address is a saved service location owned by a user. Checkout sessions,
// subscriptions and estimates copy the fields into their own snapshots, so
// editing an address never rewrites history.
type Address struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Label      string
	Street     string
	City       string
	State      string
	PostalCode string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ServiceAddress is the snapshot form embedded in checkout sessions,
// subscriptions and estimate line groups.
type ServiceAddress struct {
	Label      string `json:"label,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Normalize trims every field and uppercases the state code.
func (a ServiceAddress) Normalize() ServiceAddress {
	return ServiceAddress{
		Label:      strings.TrimSpace(a.Label),
		Street:     strings.TrimSpace(a.Street),
		City:       strings.TrimSpace(a.City),
		State:      strings.ToUpper(strings.TrimSpace(a.State)),
		PostalCode: strings.TrimSpace(a.PostalCode),
	}
}

// IsComplete reports whether the address can be billed and serviced.
func (a ServiceAddress) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.PostalCode != ""
}

// Summary renders the single-line form used in processor metadata and emails.
func (a ServiceAddress) Summary() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.State, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
