// FILE: internal/entity/catalog_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is one row of the public service catalog
// (e.g. "Trash Bin Cleaning", billed per bin per month).
type ServiceOffering struct {
	Id               uuid.UUID
	Slug             string
	Name             string
	Description      string
	Unit             string
	MonthlyRate      float64
	SavingsText      string
	DefaultFrequency string
	IsActive         bool
	SortOrder        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
