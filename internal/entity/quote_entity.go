// FILE: internal/entity/quote_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a submitted lead from the anonymous quote builder. Drafts live in
// Redis under the visitor's cookie token until submission.
type Quote struct {
	Id          uuid.UUID
	Token       string
	Services    []SelectedService
	ContactName string
	Email       string
	Phone       string
	Address     ServiceAddress
	Notes       string
	SubmittedAt time.Time
}
