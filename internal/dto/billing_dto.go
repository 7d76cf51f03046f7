// FILE: internal/dto/billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
)

// --- Catalog ---

type ServiceOfferingResponse struct {
	Id               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Unit             string    `json:"unit,omitempty"`
	MonthlyRate      float64   `json:"monthlyRate"`
	SavingsText      string    `json:"savingsText,omitempty"`
	DefaultFrequency string    `json:"defaultFrequency"`
}

// --- Quote builder ---

type QuoteDraft struct {
	Services []entity.SelectedService `json:"services"`
	Address  entity.ServiceAddress    `json:"address"`
	Notes    string                   `json:"notes,omitempty"`
}

type SubmitQuoteRequest struct {
	ContactName string                   `json:"contactName" validate:"required,min=2"`
	Email       string                   `json:"email" validate:"required,email"`
	Phone       string                   `json:"phone"`
	Services    []entity.SelectedService `json:"services" validate:"required,min=1"`
	Address     entity.ServiceAddress    `json:"address"`
	Notes       string                   `json:"notes"`
}

// --- Checkout ---

type StartCheckoutRequest struct {
	Services            []entity.SelectedService `json:"services"`
	Address             entity.ServiceAddress    `json:"address"`
	PlanId              string                   `json:"planId"`
	PlanName            string                   `json:"planName"`
	MonthlyTotal        float64                  `json:"monthlyTotal"`
	AccessNotes         string                   `json:"accessNotes"`
	PreferredServiceDay string                   `json:"preferredServiceDay"`
}

type StartCheckoutResponse struct {
	URL string `json:"url"`
}

type FinalizeCheckoutRequest struct {
	SessionId string `json:"sessionId"`
	Outcome   string `json:"outcome" validate:"required,oneof=success cancelled"`
}

type FinalizeCheckoutResponse struct {
	Status              string `json:"status"`
	Message             string `json:"message"`
	StripeStatus        string `json:"stripeStatus,omitempty"`
	StripePaymentStatus string `json:"stripePaymentStatus,omitempty"`
}

// --- Subscriptions ---

type SubscriptionResponse struct {
	Id                  uuid.UUID                `json:"id"`
	Services            []entity.SelectedService `json:"services"`
	Address             entity.ServiceAddress    `json:"address"`
	PlanId              string                   `json:"planId,omitempty"`
	PlanName            string                   `json:"planName,omitempty"`
	MonthlyTotal        float64                  `json:"monthlyTotal"`
	AccessNotes         string                   `json:"accessNotes,omitempty"`
	PreferredServiceDay string                   `json:"preferredServiceDay,omitempty"`
	Status              string                   `json:"status"`
	StripeStatus        string                   `json:"stripeStatus,omitempty"`
	StripePaymentStatus string                   `json:"stripePaymentStatus,omitempty"`
	CreatedAt           time.Time                `json:"createdAt"`
}

type UpdateSubscriptionRequest struct {
	Services            []entity.SelectedService `json:"services"`
	Address             entity.ServiceAddress    `json:"address"`
	PlanId              *string                  `json:"planId"`
	PlanName            *string                  `json:"planName"`
	MonthlyTotal        *float64                 `json:"monthlyTotal"`
	AccessNotes         *string                  `json:"accessNotes"`
	PreferredServiceDay *string                  `json:"preferredServiceDay"`
	Status              *string                  `json:"status"`
}

// --- Custom estimates ---

type EstimateAddressInput struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type EstimateLineItemInput struct {
	Description string  `json:"description"`
	Frequency   string  `json:"frequency"`
	Quantity    int     `json:"quantity"`
	MonthlyRate float64 `json:"monthlyRate"`
	Notes       string  `json:"notes"`
}

type CreateEstimateRequest struct {
	UserId              uuid.UUID               `json:"userId" validate:"required"`
	Addresses           []EstimateAddressInput  `json:"addresses" validate:"required,min=1"`
	LineItems           []EstimateLineItemInput `json:"lineItems" validate:"required,min=1"`
	MonthlyAdjustment   float64                 `json:"monthlyAdjustment"`
	Notes               string                  `json:"notes"`
	AdminNotes          string                  `json:"adminNotes"`
	PreferredServiceDay string                  `json:"preferredServiceDay"`
	Status              string                  `json:"status" validate:"omitempty,oneof=draft sent"`
}

// UpdateEstimateRequest is a sparse patch. Which branch it takes (status
// only, payment status, or a pricing edit) depends on which keys are set.
type UpdateEstimateRequest struct {
	Status              *string                  `json:"status"`
	PaymentStatus       *string                  `json:"paymentStatus"`
	Addresses           *[]EstimateAddressInput  `json:"addresses"`
	LineItems           *[]EstimateLineItemInput `json:"lineItems"`
	MonthlyAdjustment   *float64                 `json:"monthlyAdjustment"`
	Notes               *string                  `json:"notes"`
	AdminNotes          *string                  `json:"adminNotes"`
	PreferredServiceDay *string                  `json:"preferredServiceDay"`
}

func (r *UpdateEstimateRequest) HasPricingKeys() bool {
	return r.Addresses != nil || r.LineItems != nil || r.MonthlyAdjustment != nil ||
		r.Notes != nil || r.AdminNotes != nil || r.PreferredServiceDay != nil
}

type EstimateResponse struct {
	Id                  uuid.UUID                 `json:"id"`
	UserId              uuid.UUID                 `json:"userId"`
	Status              string                    `json:"status"`
	PaymentStatus       string                    `json:"paymentStatus"`
	LineItems           []entity.EstimateLineItem `json:"lineItems"`
	MonthlyAdjustment   float64                   `json:"monthlyAdjustment"`
	Subtotal            float64                   `json:"subtotal"`
	Total               float64                   `json:"total"`
	Addresses           []entity.ServiceAddress   `json:"addresses"`
	Notes               string                    `json:"notes,omitempty"`
	AdminNotes          string                    `json:"adminNotes,omitempty"`
	PreferredServiceDay string                    `json:"preferredServiceDay,omitempty"`
	AcceptedAt          *time.Time                `json:"acceptedAt,omitempty"`
	PaidAt              *time.Time                `json:"paidAt,omitempty"`
	CreatedAt           time.Time                 `json:"createdAt"`
}

type EstimateCheckoutRequest struct {
	EstimateIds []uuid.UUID `json:"estimateIds"`
}

type FinalizeEstimateCheckoutRequest struct {
	SessionId string `json:"sessionId"`
	Outcome   string `json:"outcome" validate:"required,oneof=success cancelled"`
}

type FinalizeEstimateCheckoutResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	EstimateIds []string `json:"estimateIds,omitempty"`
}

// --- Admin ---

type DashboardResponse struct {
	TotalUsers              int     `json:"totalUsers"`
	ActiveSubscriptions     int     `json:"activeSubscriptions"`
	PendingEstimates        int     `json:"pendingEstimates"`
	MonthlyRecurringRevenue float64 `json:"monthlyRecurringRevenue"`
}

type TransactionResponse struct {
	Id              uuid.UUID `json:"id"`
	UserEmail       string    `json:"userEmail"`
	PlanName        string    `json:"planName,omitempty"`
	MonthlyTotal    float64   `json:"monthlyTotal"`
	Status          string    `json:"status"`
	StripeStatus    string    `json:"stripeStatus,omitempty"`
	StripeSessionId string    `json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// --- Notifications ---

type NotificationPreviewRequest struct {
	Template string `json:"template" validate:"required,oneof=welcome estimate_review receipt lead_alert"`
	Email    string `json:"email" validate:"required,email"`
}
