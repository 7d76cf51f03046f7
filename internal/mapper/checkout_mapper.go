package mapper

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
)

type CheckoutMapper struct{}

func NewCheckoutMapper() *CheckoutMapper {
	return &CheckoutMapper{}
}

func (m *CheckoutMapper) ToEntity(c *model.CheckoutSession) *entity.CheckoutSession {
	if c == nil {
		return nil
	}
	var services []entity.SelectedService
	unmarshalColumn(c.Services, &services)
	var address entity.ServiceAddress
	unmarshalColumn(c.Address, &address)

	return &entity.CheckoutSession{
		Id:                   c.Id,
		UserId:               c.UserId,
		StripeSessionId:      c.StripeSessionId,
		Services:             services,
		Address:              address,
		PlanId:               c.PlanId,
		PlanName:             c.PlanName,
		MonthlyTotal:         c.MonthlyTotal,
		AccessNotes:          c.AccessNotes,
		PreferredServiceDay:  c.PreferredServiceDay,
		Status:               entity.CheckoutStatus(c.Status),
		StripeStatus:         c.StripeStatus,
		StripePaymentStatus:  c.StripePaymentStatus,
		StripeCustomerId:     c.StripeCustomerId,
		StripeSubscriptionId: c.StripeSubscriptionId,
		CompletedAt:          c.CompletedAt,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func (m *CheckoutMapper) ToModel(c *entity.CheckoutSession) *model.CheckoutSession {
	if c == nil {
		return nil
	}
	return &model.CheckoutSession{
		Id:                   c.Id,
		UserId:               c.UserId,
		StripeSessionId:      c.StripeSessionId,
		Services:             marshalColumn(c.Services),
		Address:              marshalColumn(c.Address),
		PlanId:               c.PlanId,
		PlanName:             c.PlanName,
		MonthlyTotal:         c.MonthlyTotal,
		AccessNotes:          c.AccessNotes,
		PreferredServiceDay:  c.PreferredServiceDay,
		Status:               string(c.Status),
		StripeStatus:         c.StripeStatus,
		StripePaymentStatus:  c.StripePaymentStatus,
		StripeCustomerId:     c.StripeCustomerId,
		StripeSubscriptionId: c.StripeSubscriptionId,
		CompletedAt:          c.CompletedAt,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
