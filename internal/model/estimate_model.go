package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CustomEstimate struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedByEmail       string         `gorm:"type:varchar(255)"`
	Status               string         `gorm:"type:varchar(50);not null;default:'draft'"`
	PaymentStatus        string         `gorm:"type:varchar(50);not null;default:'pending'"`
	LineItems            datatypes.JSON `gorm:"type:jsonb;not null"`
	MonthlyAdjustment    float64        `gorm:"type:decimal(10,2);default:0"`
	Subtotal             float64        `gorm:"type:decimal(10,2);not null"`
	Total                float64        `gorm:"type:decimal(10,2);not null"`
	Addresses            datatypes.JSON `gorm:"type:jsonb;not null"`
	Notes                string         `gorm:"type:text"`
	AdminNotes           string         `gorm:"type:text"`
	PreferredServiceDay  string         `gorm:"type:varchar(50)"`
	StripeSubscriptionId *string        `gorm:"type:varchar(255);index"`
	AcceptedAt           *time.Time
	PaidAt               *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (CustomEstimate) TableName() string {
	return "custom_estimates"
}
