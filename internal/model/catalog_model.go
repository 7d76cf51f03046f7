package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceOffering struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug             string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Description      string    `gorm:"type:text"`
	Unit             string    `gorm:"type:varchar(50)"`
	MonthlyRate      float64   `gorm:"type:decimal(10,2);not null"`
	SavingsText      string    `gorm:"type:varchar(255)"`
	DefaultFrequency string    `gorm:"type:varchar(50);not null;default:'monthly'"`
	IsActive         bool      `gorm:"default:true"`
	SortOrder        int       `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (ServiceOffering) TableName() string {
	return "service_offerings"
}
