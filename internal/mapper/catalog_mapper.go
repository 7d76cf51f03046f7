package mapper

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ToEntity(o *model.ServiceOffering) *entity.ServiceOffering {
	if o == nil {
		return nil
	}
	return &entity.ServiceOffering{
		Id:               o.Id,
		Slug:             o.Slug,
		Name:             o.Name,
		Description:      o.Description,
		Unit:             o.Unit,
		MonthlyRate:      o.MonthlyRate,
		SavingsText:      o.SavingsText,
		DefaultFrequency: o.DefaultFrequency,
		IsActive:         o.IsActive,
		SortOrder:        o.SortOrder,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func (m *CatalogMapper) ToModel(o *entity.ServiceOffering) *model.ServiceOffering {
	if o == nil {
		return nil
	}
	return &model.ServiceOffering{
		Id:               o.Id,
		Slug:             o.Slug,
		Name:             o.Name,
		Description:      o.Description,
		Unit:             o.Unit,
		MonthlyRate:      o.MonthlyRate,
		SavingsText:      o.SavingsText,
		DefaultFrequency: o.DefaultFrequency,
		IsActive:         o.IsActive,
		SortOrder:        o.SortOrder,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
