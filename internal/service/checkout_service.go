// FILE: internal/service/checkout_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/payments"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/atlanteavila/trashpanda-sub000/pkg/events"
	pktNats "github.com/atlanteavila/trashpanda-sub000/pkg/nats"

	"github.com/google/uuid"
)

type ICheckoutService interface {
	StartCheckout(ctx context.Context, userId uuid.UUID, req *dto.StartCheckoutRequest) (*dto.StartCheckoutResponse, error)
	FinalizeCheckout(ctx context.Context, userId uuid.UUID, req *dto.FinalizeCheckoutRequest) (*dto.FinalizeCheckoutResponse, error)
}

type checkoutService struct {
	uowFactory     unitofwork.RepositoryFactory
	gateway        payments.Gateway
	notifications  INotificationService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
	frontendURL    string
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payments.Gateway,
	notifications INotificationService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	frontendURL string,
) ICheckoutService {
	return &checkoutService{
		uowFactory:     uowFactory,
		gateway:        gateway,
		notifications:  notifications,
		eventPublisher: eventPublisher,
		logger:         log,
		frontendURL:    frontendURL,
	}
}

func dollarsToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *checkoutService) StartCheckout(ctx context.Context, userId uuid.UUID, req *dto.StartCheckoutRequest) (*dto.StartCheckoutResponse, error) {
	services := entity.NormalizeServices(req.Services)
	if len(services) == 0 {
		return nil, serverutils.BadRequest("Add at least one service before checking out.")
	}

	address := req.Address.Normalize()
	if !address.IsComplete() {
		return nil, serverutils.BadRequest("Provide a complete address before checking out.")
	}

	// Totals are recomputed from the normalized snapshot. The client sends
	// its own figure but the one we bill from is ours.
	monthlyTotal := entity.MonthlyTotal(services)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("User not found")
	}

	checkout := &entity.CheckoutSession{
		Id:                  uuid.New(),
		UserId:              userId,
		Services:            services,
		Address:             address,
		PlanId:              req.PlanId,
		PlanName:            req.PlanName,
		MonthlyTotal:        monthlyTotal,
		AccessNotes:         req.AccessNotes,
		PreferredServiceDay: req.PreferredServiceDay,
		Status:              entity.CheckoutStatusPending,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	// The pending row is committed before the provider call so a crash in
	// between leaves a recoverable record, never a paid-but-unknown session.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CheckoutRepository().Create(ctx, checkout); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	lineItems := make([]payments.LineItem, 0, len(services))
	for _, svc := range services {
		lineItems = append(lineItems, payments.LineItem{
			Name:        fmt.Sprintf("%s (%s)", svc.Name, svc.Frequency),
			AmountCents: dollarsToCents(svc.MonthlyRate),
			Quantity:    int64(svc.Quantity),
		})
	}

	gwSession, err := s.gateway.CreateCheckoutSession(ctx, payments.CreateSessionInput{
		CustomerEmail: user.Email,
		SuccessURL:    fmt.Sprintf("%s/checkout/result?session_id={CHECKOUT_SESSION_ID}&outcome=success", s.frontendURL),
		CancelURL:     fmt.Sprintf("%s/checkout/result?outcome=cancelled", s.frontendURL),
		LineItems:     lineItems,
		Metadata: map[string]string{
			"userId":         userId.String(),
			"checkoutId":     checkout.Id.String(),
			"planId":         req.PlanId,
			"planName":       req.PlanName,
			"addressSummary": address.Summary(),
			"monthlyTotal":   fmt.Sprintf("%.2f", monthlyTotal),
			"accessNotes":    req.AccessNotes,
			"serviceDay":     req.PreferredServiceDay,
		},
	})
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			return nil, serverutils.ServiceUnavailable("Online checkout is not available right now. Please contact us to finish signing up.")
		}
		s.logger.Error("checkout", "failed to create checkout session", map[string]interface{}{
			"checkout_id": checkout.Id,
			"error":       err.Error(),
		})
		return nil, serverutils.BadGateway("We could not start checkout with our payment provider. Please try again.")
	}

	checkout.StripeSessionId = &gwSession.Id
	checkout.StripeStatus = gwSession.Status
	checkout.StripePaymentStatus = gwSession.PaymentStatus
	if err := uow.CheckoutRepository().Update(ctx, checkout); err != nil {
		// The hosted session exists either way; finalize can still recover
		// the row through session metadata.
		s.logger.Error("checkout", "failed to store provider session id", map[string]interface{}{
			"checkout_id": checkout.Id,
			"session_id":  gwSession.Id,
			"error":       err.Error(),
		})
	}

	return &dto.StartCheckoutResponse{URL: gwSession.URL}, nil
}

func (s *checkoutService) FinalizeCheckout(ctx context.Context, userId uuid.UUID, req *dto.FinalizeCheckoutRequest) (*dto.FinalizeCheckoutResponse, error) {
	if req.SessionId == "" {
		if req.Outcome == "cancelled" {
			return &dto.FinalizeCheckoutResponse{
				Status:  "cancelled",
				Message: "Checkout was cancelled before a session could be created.",
			}, nil
		}
		return nil, serverutils.BadRequest("We could not confirm your checkout session. Please contact support.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	checkout, err := uow.CheckoutRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByStripeSessionID{SessionID: req.SessionId},
	)
	if err != nil {
		return nil, err
	}

	// The session id may never have been written back (crash after the
	// provider call). On a success outcome the provider still knows our
	// checkout id through metadata.
	var gwSession *payments.Session
	if checkout == nil && req.Outcome == "success" {
		gwSession, err = s.retrieveSession(ctx, req.SessionId)
		if err != nil {
			return nil, err
		}
		if rawId := gwSession.Metadata["checkoutId"]; rawId != "" {
			if checkoutId, parseErr := uuid.Parse(rawId); parseErr == nil {
				checkout, err = uow.CheckoutRepository().FindOne(ctx,
					specification.ByID{ID: checkoutId},
					specification.UserOwnedBy{UserID: userId},
				)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	if checkout == nil {
		return nil, serverutils.NotFound("We could not locate your checkout session.")
	}

	// Completed is terminal. Repeating the call (page refresh, double
	// redirect) answers the same thing without touching the row again.
	if checkout.Status == entity.CheckoutStatusCompleted {
		return &dto.FinalizeCheckoutResponse{
			Status:              "completed",
			Message:             "Your subscription is already active.",
			StripeStatus:        checkout.StripeStatus,
			StripePaymentStatus: checkout.StripePaymentStatus,
		}, nil
	}

	if req.Outcome == "cancelled" {
		now := time.Now()
		checkout.Status = entity.CheckoutStatusCancelled
		checkout.CompletedAt = &now
		if err := uow.CheckoutRepository().Update(ctx, checkout); err != nil {
			return nil, err
		}
		return &dto.FinalizeCheckoutResponse{
			Status:  "cancelled",
			Message: "Checkout was cancelled. Your selections are still saved.",
		}, nil
	}

	// Success is never taken on the client's word; the session is always
	// re-read from the provider.
	if gwSession == nil {
		gwSession, err = s.retrieveSession(ctx, req.SessionId)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	checkout.Status = entity.CheckoutStatusCompleted
	checkout.CompletedAt = &now
	checkout.StripeStatus = gwSession.Status
	checkout.StripePaymentStatus = gwSession.PaymentStatus
	checkout.StripeCustomerId = gwSession.CustomerId
	if gwSession.SubscriptionId != "" {
		checkout.StripeSubscriptionId = &gwSession.SubscriptionId
	}
	if checkout.StripeSessionId == nil {
		checkout.StripeSessionId = &gwSession.Id
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CheckoutRepository().Update(ctx, checkout); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Completing the checkout is the primary write; mirroring the
	// subscription is secondary and must not fail the customer's payment
	// confirmation. It runs in its own unit of work, after the commit, so
	// a failed statement cannot poison the checkout transaction.
	if upsertErr := s.upsertSubscription(ctx, checkout, gwSession); upsertErr != nil {
		s.logger.Error("checkout", "failed to sync local subscription", map[string]interface{}{
			"checkout_id":            checkout.Id,
			"stripe_subscription_id": gwSession.SubscriptionId,
			"error":                  upsertErr.Error(),
		})
	}

	s.publishEvent(ctx, "CHECKOUT_COMPLETED", map[string]interface{}{
		"checkout_id":   checkout.Id,
		"user_id":       checkout.UserId,
		"monthly_total": checkout.MonthlyTotal,
		"plan_name":     checkout.PlanName,
		"occurred_at":   now,
	})

	if user, findErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId}); findErr == nil && user != nil {
		s.notifications.Enqueue(ctx, dto.EmailMessage{
			Template: dto.EmailTemplateReceipt,
			To:       user.Email,
			PlanName: checkout.PlanName,
			Total:    checkout.MonthlyTotal,
		})
	}

	return &dto.FinalizeCheckoutResponse{
		Status:              "completed",
		Message:             "Your subscription is active. Welcome aboard!",
		StripeStatus:        checkout.StripeStatus,
		StripePaymentStatus: checkout.StripePaymentStatus,
	}, nil
}

func (s *checkoutService) retrieveSession(ctx context.Context, sessionId string) (*payments.Session, error) {
	gwSession, err := s.gateway.GetCheckoutSession(ctx, sessionId)
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			return nil, serverutils.ServiceUnavailable("Online checkout is not available right now. Please contact us to finish signing up.")
		}
		s.logger.Error("checkout", "failed to retrieve checkout session", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, serverutils.BadGateway("We could not verify your payment with our provider. Please try again.")
	}
	return gwSession, nil
}

// upsertSubscription keeps one local row per provider subscription. The
// unique index on stripe_subscription_id backs this up under concurrent
// finalize calls.
func (s *checkoutService) upsertSubscription(ctx context.Context, checkout *entity.CheckoutSession, gwSession *payments.Session) error {
	if gwSession.SubscriptionId == "" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	accessNotes := checkout.AccessNotes
	if accessNotes == "" {
		accessNotes = gwSession.Metadata["accessNotes"]
	}
	serviceDay := checkout.PreferredServiceDay
	if serviceDay == "" {
		serviceDay = gwSession.Metadata["serviceDay"]
	}

	existing, err := uow.SubscriptionRepository().FindOne(ctx,
		specification.ByStripeSubscriptionID{SubscriptionID: gwSession.SubscriptionId},
	)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Services = checkout.Services
		existing.Address = checkout.Address
		existing.PlanId = checkout.PlanId
		existing.PlanName = checkout.PlanName
		existing.MonthlyTotal = checkout.MonthlyTotal
		existing.AccessNotes = accessNotes
		existing.PreferredServiceDay = serviceDay
		existing.Status = entity.SubscriptionStatusActive
		existing.StripeStatus = gwSession.Status
		existing.StripePaymentStatus = gwSession.PaymentStatus
		existing.StripeCustomerId = gwSession.CustomerId
		return uow.SubscriptionRepository().Update(ctx, existing)
	}

	sub := &entity.Subscription{
		Id:                   uuid.New(),
		UserId:               checkout.UserId,
		StripeSubscriptionId: &gwSession.SubscriptionId,
		Services:             checkout.Services,
		Address:              checkout.Address,
		PlanId:               checkout.PlanId,
		PlanName:             checkout.PlanName,
		MonthlyTotal:         checkout.MonthlyTotal,
		AccessNotes:          accessNotes,
		PreferredServiceDay:  serviceDay,
		Status:               entity.SubscriptionStatusActive,
		StripeStatus:         gwSession.Status,
		StripePaymentStatus:  gwSession.PaymentStatus,
		StripeCustomerId:     gwSession.CustomerId,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
	return uow.SubscriptionRepository().Create(ctx, sub)
}

func (s *checkoutService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("checkout", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
