package mapper

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
)

type QuoteMapper struct{}

func NewQuoteMapper() *QuoteMapper {
	return &QuoteMapper{}
}

func (m *QuoteMapper) ToEntity(q *model.Quote) *entity.Quote {
	if q == nil {
		return nil
	}
	var services []entity.SelectedService
	unmarshalColumn(q.Services, &services)
	var address entity.ServiceAddress
	unmarshalColumn(q.Address, &address)

	return &entity.Quote{
		Id:          q.Id,
		Token:       q.Token,
		Services:    services,
		ContactName: q.ContactName,
		Email:       q.Email,
		Phone:       q.Phone,
		Address:     address,
		Notes:       q.Notes,
		SubmittedAt: q.SubmittedAt,
	}
}

func (m *QuoteMapper) ToModel(q *entity.Quote) *model.Quote {
	if q == nil {
		return nil
	}
	return &model.Quote{
		Id:          q.Id,
		Token:       q.Token,
		Services:    marshalColumn(q.Services),
		ContactName: q.ContactName,
		Email:       q.Email,
		Phone:       q.Phone,
		Address:     marshalColumn(q.Address),
		Notes:       q.Notes,
		SubmittedAt: q.SubmittedAt,
	}
}
