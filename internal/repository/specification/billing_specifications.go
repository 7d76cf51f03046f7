package specification

import "gorm.io/gorm"

type ByStripeSessionID struct {
	SessionID string
}

func (s ByStripeSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stripe_session_id = ?", s.SessionID)
}

type ByStripeSubscriptionID struct {
	SubscriptionID string
}

func (s ByStripeSubscriptionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stripe_subscription_id = ?", s.SubscriptionID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type StatusIn struct {
	Statuses []string
}

func (s StatusIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

type ByPaymentStatus struct {
	PaymentStatus string
}

func (s ByPaymentStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.PaymentStatus)
}

// ActiveOfferings keeps only catalog rows shown to the public.
type ActiveOfferings struct{}

func (s ActiveOfferings) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
