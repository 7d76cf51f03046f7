// FILE: internal/dto/notification_dto.go
package dto

// EmailMessage is the payload carried on the in-process notification bus.
// Template decides which fields the worker reads.
type EmailMessage struct {
	Template       string  `json:"template"`
	To             string  `json:"to"`
	FullName       string  `json:"full_name,omitempty"`
	PlanName       string  `json:"plan_name,omitempty"`
	Total          float64 `json:"total,omitempty"`
	ResetToken     string  `json:"reset_token,omitempty"`
	ContactName    string  `json:"contact_name,omitempty"`
	ContactEmail   string  `json:"contact_email,omitempty"`
	AddressSummary string  `json:"address_summary,omitempty"`
}

const (
	EmailTemplateWelcome        = "welcome"
	EmailTemplateResetToken     = "reset_token"
	EmailTemplateEstimateReview = "estimate_review"
	EmailTemplateReceipt        = "receipt"
	EmailTemplateLeadAlert      = "lead_alert"
)
