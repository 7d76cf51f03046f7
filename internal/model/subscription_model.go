package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID      `gorm:"type:uuid;not null;index"`
	StripeSubscriptionId *string        `gorm:"type:varchar(255);uniqueIndex"`
	Services             datatypes.JSON `gorm:"type:jsonb;not null"`
	Address              datatypes.JSON `gorm:"type:jsonb;not null"`
	PlanId               string         `gorm:"type:varchar(100)"`
	PlanName             string         `gorm:"type:varchar(255)"`
	MonthlyTotal         float64        `gorm:"type:decimal(10,2);not null"`
	AccessNotes          string         `gorm:"type:text"`
	PreferredServiceDay  string         `gorm:"type:varchar(50)"`
	Status               string         `gorm:"type:varchar(50);not null;default:'active'"`
	StripeStatus         string         `gorm:"type:varchar(100)"`
	StripePaymentStatus  string         `gorm:"type:varchar(100)"`
	StripeCustomerId     string         `gorm:"type:varchar(255)"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
