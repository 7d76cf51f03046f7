package model

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(100)"`
	Street     string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(100);not null"`
	State      string    `gorm:"type:varchar(10);not null"`
	PostalCode string    `gorm:"type:varchar(20);not null"`
	IsDefault  bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Address) TableName() string {
	return "addresses"
}
