// FILE: internal/service/subscription_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	ListSubscriptions(ctx context.Context, userId uuid.UUID) ([]dto.SubscriptionResponse, error)
	UpdateSubscription(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory) ISubscriptionService {
	return &subscriptionService{uowFactory: uowFactory}
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userId uuid.UUID) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, toSubscriptionResponse(sub))
	}
	return responses, nil
}

// UpdateSubscription edits the local service plan only. Processor billing is
// not touched here; a price change takes effect through the admin estimate
// flow, not this endpoint.
func (s *subscriptionService) UpdateSubscription(ctx context.Context, userId, subscriptionId uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.ByID{ID: subscriptionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, serverutils.NotFound("Subscription not found")
	}

	// The update is a full replacement: every request carries the complete
	// service list and address, not a delta.
	services := entity.NormalizeServices(req.Services)
	if len(services) == 0 {
		return nil, serverutils.BadRequest("A subscription needs at least one service.")
	}
	address := req.Address.Normalize()
	if !address.IsComplete() {
		return nil, serverutils.BadRequest("Provide a complete address before updating the subscription.")
	}
	sub.Services = services
	sub.MonthlyTotal = entity.MonthlyTotal(services)
	sub.Address = address

	if req.PlanId != nil {
		sub.PlanId = strings.TrimSpace(*req.PlanId)
	}
	if req.PlanName != nil {
		sub.PlanName = strings.TrimSpace(*req.PlanName)
	}
	if req.MonthlyTotal != nil && *req.MonthlyTotal >= 0 {
		sub.MonthlyTotal = entity.RoundCents(*req.MonthlyTotal)
	}
	if req.AccessNotes != nil {
		sub.AccessNotes = strings.TrimSpace(*req.AccessNotes)
	}
	if req.PreferredServiceDay != nil {
		sub.PreferredServiceDay = strings.TrimSpace(*req.PreferredServiceDay)
	}

	// Unknown status strings are dropped, the current status stays.
	if req.Status != nil && entity.ValidSubscriptionStatus(*req.Status) {
		sub.Status = entity.SubscriptionStatus(*req.Status)
	}

	sub.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, err
	}

	resp := toSubscriptionResponse(sub)
	return &resp, nil
}

func toSubscriptionResponse(sub *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		Id:                  sub.Id,
		Services:            sub.Services,
		Address:             sub.Address,
		PlanId:              sub.PlanId,
		PlanName:            sub.PlanName,
		MonthlyTotal:        sub.MonthlyTotal,
		AccessNotes:         sub.AccessNotes,
		PreferredServiceDay: sub.PreferredServiceDay,
		Status:              string(sub.Status),
		StripeStatus:        sub.StripeStatus,
		StripePaymentStatus: sub.StripePaymentStatus,
		CreatedAt:           sub.CreatedAt,
	}
}
