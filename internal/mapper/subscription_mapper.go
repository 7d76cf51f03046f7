package mapper

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	var services []entity.SelectedService
	unmarshalColumn(s.Services, &services)
	var address entity.ServiceAddress
	unmarshalColumn(s.Address, &address)

	return &entity.Subscription{
		Id:                   s.Id,
		UserId:               s.UserId,
		StripeSubscriptionId: s.StripeSubscriptionId,
		Services:             services,
		Address:              address,
		PlanId:               s.PlanId,
		PlanName:             s.PlanName,
		MonthlyTotal:         s.MonthlyTotal,
		AccessNotes:          s.AccessNotes,
		PreferredServiceDay:  s.PreferredServiceDay,
		Status:               entity.SubscriptionStatus(s.Status),
		StripeStatus:         s.StripeStatus,
		StripePaymentStatus:  s.StripePaymentStatus,
		StripeCustomerId:     s.StripeCustomerId,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:                   s.Id,
		UserId:               s.UserId,
		StripeSubscriptionId: s.StripeSubscriptionId,
		Services:             marshalColumn(s.Services),
		Address:              marshalColumn(s.Address),
		PlanId:               s.PlanId,
		PlanName:             s.PlanName,
		MonthlyTotal:         s.MonthlyTotal,
		AccessNotes:          s.AccessNotes,
		PreferredServiceDay:  s.PreferredServiceDay,
		Status:               string(s.Status),
		StripeStatus:         s.StripeStatus,
		StripePaymentStatus:  s.StripePaymentStatus,
		StripeCustomerId:     s.StripeCustomerId,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
