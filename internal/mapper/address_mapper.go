package mapper

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
)

type AddressMapper struct{}

func NewAddressMapper() *AddressMapper {
	return &AddressMapper{}
}

func (m *AddressMapper) ToEntity(a *model.Address) *entity.Address {
	if a == nil {
		return nil
	}
	return &entity.Address{
		Id:         a.Id,
		UserId:     a.UserId,
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m *AddressMapper) ToModel(a *entity.Address) *model.Address {
	if a == nil {
		return nil
	}
	return &model.Address{
		Id:         a.Id,
		UserId:     a.UserId,
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		IsDefault:  a.IsDefault,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
