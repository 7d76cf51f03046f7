package mapper

import (
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
)

type EstimateMapper struct{}

func NewEstimateMapper() *EstimateMapper {
	return &EstimateMapper{}
}

func (m *EstimateMapper) ToEntity(e *model.CustomEstimate) *entity.CustomEstimate {
	if e == nil {
		return nil
	}
	var items []entity.EstimateLineItem
	unmarshalColumn(e.LineItems, &items)
	var addresses []entity.ServiceAddress
	unmarshalColumn(e.Addresses, &addresses)

	return &entity.CustomEstimate{
		Id:                   e.Id,
		UserId:               e.UserId,
		CreatedByEmail:       e.CreatedByEmail,
		Status:               entity.EstimateStatus(e.Status),
		PaymentStatus:        entity.EstimatePaymentStatus(e.PaymentStatus),
		LineItems:            items,
		MonthlyAdjustment:    e.MonthlyAdjustment,
		Subtotal:             e.Subtotal,
		Total:                e.Total,
		Addresses:            addresses,
		Notes:                e.Notes,
		AdminNotes:           e.AdminNotes,
		PreferredServiceDay:  e.PreferredServiceDay,
		StripeSubscriptionId: e.StripeSubscriptionId,
		AcceptedAt:           e.AcceptedAt,
		PaidAt:               e.PaidAt,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func (m *EstimateMapper) ToModel(e *entity.CustomEstimate) *model.CustomEstimate {
	if e == nil {
		return nil
	}
	return &model.CustomEstimate{
		Id:                   e.Id,
		UserId:               e.UserId,
		CreatedByEmail:       e.CreatedByEmail,
		Status:               string(e.Status),
		PaymentStatus:        string(e.PaymentStatus),
		LineItems:            marshalColumn(e.LineItems),
		MonthlyAdjustment:    e.MonthlyAdjustment,
		Subtotal:             e.Subtotal,
		Total:                e.Total,
		Addresses:            marshalColumn(e.Addresses),
		Notes:                e.Notes,
		AdminNotes:           e.AdminNotes,
		PreferredServiceDay:  e.PreferredServiceDay,
		StripeSubscriptionId: e.StripeSubscriptionId,
		AcceptedAt:           e.AcceptedAt,
		PaidAt:               e.PaidAt,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
