package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quote struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token       string         `gorm:"type:varchar(100);index"`
	Services    datatypes.JSON `gorm:"type:jsonb;not null"`
	ContactName string         `gorm:"type:varchar(255)"`
	Email       string         `gorm:"type:varchar(255);not null;index"`
	Phone       string         `gorm:"type:varchar(50)"`
	Address     datatypes.JSON `gorm:"type:jsonb"`
	Notes       string         `gorm:"type:text"`
	SubmittedAt time.Time      `gorm:"not null"`
}

func (Quote) TableName() string {
	return "quotes"
}
