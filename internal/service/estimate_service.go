// FILE: internal/service/estimate_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/payments"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEstimateService interface {
	CreateEstimate(ctx context.Context, adminEmail string, req *dto.CreateEstimateRequest) (*dto.EstimateResponse, error)
	ListEstimates(ctx context.Context, actorId uuid.UUID, isAdmin bool, filterUserId *uuid.UUID) ([]dto.EstimateResponse, error)
	GetEstimate(ctx context.Context, actorId uuid.UUID, isAdmin bool, estimateId uuid.UUID) (*dto.EstimateResponse, error)
	UpdateEstimate(ctx context.Context, actorId uuid.UUID, isAdmin bool, estimateId uuid.UUID, req *dto.UpdateEstimateRequest) (*dto.EstimateResponse, error)
	DeleteEstimate(ctx context.Context, estimateId uuid.UUID) error

	StartEstimateCheckout(ctx context.Context, userId uuid.UUID, req *dto.EstimateCheckoutRequest) (*dto.StartCheckoutResponse, error)
	FinalizeEstimateCheckout(ctx context.Context, userId uuid.UUID, req *dto.FinalizeEstimateCheckoutRequest) (*dto.FinalizeEstimateCheckoutResponse, error)
}

type estimateService struct {
	uowFactory    unitofwork.RepositoryFactory
	gateway       payments.Gateway
	notifications INotificationService
	logger        logger.ILogger
	frontendURL   string
}

func NewEstimateService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payments.Gateway,
	notifications INotificationService,
	log logger.ILogger,
	frontendURL string,
) IEstimateService {
	return &estimateService{
		uowFactory:    uowFactory,
		gateway:       gateway,
		notifications: notifications,
		logger:        log,
		frontendURL:   frontendURL,
	}
}

func (s *estimateService) CreateEstimate(ctx context.Context, adminEmail string, req *dto.CreateEstimateRequest) (*dto.EstimateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.BadRequest("Customer not found")
	}

	lineItems := entity.NormalizeLineItems(toLineItems(req.LineItems))
	if len(lineItems) == 0 {
		return nil, serverutils.BadRequest("An estimate needs at least one line item.")
	}

	addresses := toServiceAddresses(req.Addresses)
	if len(addresses) == 0 {
		return nil, serverutils.BadRequest("An estimate needs at least one service address.")
	}

	status := entity.EstimateStatusDraft
	if req.Status != "" {
		status = entity.EstimateStatus(req.Status)
	}

	subtotal, total := entity.EstimateTotals(lineItems, req.MonthlyAdjustment)

	estimate := &entity.CustomEstimate{
		Id:                  uuid.New(),
		UserId:              req.UserId,
		CreatedByEmail:      adminEmail,
		Status:              status,
		PaymentStatus:       entity.EstimatePaymentPending,
		LineItems:           lineItems,
		MonthlyAdjustment:   entity.RoundCents(req.MonthlyAdjustment),
		Subtotal:            subtotal,
		Total:               total,
		Addresses:           addresses,
		Notes:               strings.TrimSpace(req.Notes),
		AdminNotes:          strings.TrimSpace(req.AdminNotes),
		PreferredServiceDay: strings.TrimSpace(req.PreferredServiceDay),
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := uow.EstimateRepository().Create(ctx, estimate); err != nil {
		return nil, err
	}

	if status == entity.EstimateStatusSent {
		s.notifications.Enqueue(ctx, dto.EmailMessage{
			Template: dto.EmailTemplateEstimateReview,
			To:       user.Email,
			FullName: user.FullName,
			Total:    estimate.Total,
		})
	}

	resp := toEstimateResponse(estimate)
	return &resp, nil
}

func (s *estimateService) ListEstimates(ctx context.Context, actorId uuid.UUID, isAdmin bool, filterUserId *uuid.UUID) ([]dto.EstimateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if !isAdmin {
		specs = append(specs, specification.UserOwnedBy{UserID: actorId})
	} else if filterUserId != nil {
		specs = append(specs, specification.UserOwnedBy{UserID: *filterUserId})
	}

	estimates, err := uow.EstimateRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		responses = append(responses, toEstimateResponse(e))
	}
	return responses, nil
}

func (s *estimateService) GetEstimate(ctx context.Context, actorId uuid.UUID, isAdmin bool, estimateId uuid.UUID) (*dto.EstimateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	estimate, err := s.findVisible(ctx, uow, actorId, isAdmin, estimateId)
	if err != nil {
		return nil, err
	}

	resp := toEstimateResponse(estimate)
	return &resp, nil
}

// UpdateEstimate handles three kinds of patch, decided by which keys are set:
// a status transition, a payment-status change, or a pricing edit. A pricing
// edit against an active estimate with a linked processor subscription pushes
// the new lines to the processor first; if that fails nothing is persisted.
func (s *estimateService) UpdateEstimate(ctx context.Context, actorId uuid.UUID, isAdmin bool, estimateId uuid.UUID, req *dto.UpdateEstimateRequest) (*dto.EstimateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	estimate, err := s.findVisible(ctx, uow, actorId, isAdmin, estimateId)
	if err != nil {
		return nil, err
	}

	var notifyUser *entity.User

	if req.Status != nil {
		if !entity.ValidEstimateStatus(*req.Status) {
			return nil, serverutils.BadRequest("Unknown estimate status")
		}
		newStatus := entity.EstimateStatus(*req.Status)
		if !isAdmin && !entity.CustomerMaySetStatus(newStatus) {
			return nil, serverutils.Forbidden("You cannot move an estimate into this state")
		}
		if newStatus == entity.EstimateStatusAccepted && estimate.AcceptedAt == nil {
			now := time.Now()
			estimate.AcceptedAt = &now
		}
		if isAdmin && newStatus == entity.EstimateStatusSent && estimate.Status != entity.EstimateStatusSent {
			if user, findErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: estimate.UserId}); findErr == nil && user != nil {
				notifyUser = user
			}
		}
		estimate.Status = newStatus
	}

	if req.PaymentStatus != nil {
		if !isAdmin {
			return nil, serverutils.Forbidden("Only an admin can change the payment status")
		}
		switch entity.EstimatePaymentStatus(*req.PaymentStatus) {
		case entity.EstimatePaymentPending, entity.EstimatePaymentPaid, entity.EstimatePaymentPaidOnFile:
		default:
			return nil, serverutils.BadRequest("Unknown payment status")
		}
		estimate.PaymentStatus = entity.EstimatePaymentStatus(*req.PaymentStatus)
		if estimate.PaymentStatus != entity.EstimatePaymentPending && estimate.PaidAt == nil {
			now := time.Now()
			estimate.PaidAt = &now
		}
	}

	if req.HasPricingKeys() {
		if !isAdmin {
			return nil, serverutils.Forbidden("Only an admin can edit estimate pricing")
		}

		if req.LineItems != nil {
			lineItems := entity.NormalizeLineItems(toLineItems(*req.LineItems))
			if len(lineItems) == 0 {
				return nil, serverutils.BadRequest("An estimate needs at least one line item.")
			}
			estimate.LineItems = lineItems
		}
		if req.Addresses != nil {
			addresses := toServiceAddresses(*req.Addresses)
			if len(addresses) == 0 {
				return nil, serverutils.BadRequest("An estimate needs at least one service address.")
			}
			estimate.Addresses = addresses
		}
		if req.MonthlyAdjustment != nil {
			estimate.MonthlyAdjustment = entity.RoundCents(*req.MonthlyAdjustment)
		}
		if req.Notes != nil {
			estimate.Notes = strings.TrimSpace(*req.Notes)
		}
		if req.AdminNotes != nil {
			estimate.AdminNotes = strings.TrimSpace(*req.AdminNotes)
		}
		if req.PreferredServiceDay != nil {
			estimate.PreferredServiceDay = strings.TrimSpace(*req.PreferredServiceDay)
		}

		estimate.Subtotal, estimate.Total = entity.EstimateTotals(estimate.LineItems, estimate.MonthlyAdjustment)

		// A live subscription must keep billing what the estimate says, so
		// the processor is updated before the local row.
		if estimate.Status == entity.EstimateStatusActive && estimate.StripeSubscriptionId != nil {
			if err := s.gateway.ReplaceSubscriptionItems(ctx, *estimate.StripeSubscriptionId, estimateBillingLines(estimate)); err != nil {
				if errors.Is(err, payments.ErrNotConfigured) {
					return nil, serverutils.ServiceUnavailable("Billing updates are not available right now.")
				}
				s.logger.Error("estimate", "failed to update processor subscription", map[string]interface{}{
					"estimate_id":            estimate.Id,
					"stripe_subscription_id": *estimate.StripeSubscriptionId,
					"error":                  err.Error(),
				})
				return nil, serverutils.BadGateway("We could not update billing with our payment provider. No changes were saved.")
			}
		}
	}

	estimate.UpdatedAt = time.Now()
	if err := uow.EstimateRepository().Update(ctx, estimate); err != nil {
		return nil, err
	}

	if notifyUser != nil {
		s.notifications.Enqueue(ctx, dto.EmailMessage{
			Template: dto.EmailTemplateEstimateReview,
			To:       notifyUser.Email,
			FullName: notifyUser.FullName,
			Total:    estimate.Total,
		})
	}

	resp := toEstimateResponse(estimate)
	return &resp, nil
}

// DeleteEstimate cancels any linked processor subscription before removing
// the row. A processor failure blocks the delete so billing never outlives
// the record it bills for.
func (s *estimateService) DeleteEstimate(ctx context.Context, estimateId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	estimate, err := uow.EstimateRepository().FindOne(ctx, specification.ByID{ID: estimateId})
	if err != nil {
		return err
	}
	if estimate == nil {
		return serverutils.NotFound("Estimate not found")
	}

	if estimate.StripeSubscriptionId != nil {
		// Any cancel failure blocks the delete, a missing gateway included:
		// deleting the row anyway would orphan a live external subscription.
		if err := s.gateway.CancelSubscription(ctx, *estimate.StripeSubscriptionId); err != nil {
			if errors.Is(err, payments.ErrNotConfigured) {
				return serverutils.ServiceUnavailable("Billing updates are not available right now. The estimate was not deleted.")
			}
			s.logger.Error("estimate", "failed to cancel processor subscription", map[string]interface{}{
				"estimate_id":            estimate.Id,
				"stripe_subscription_id": *estimate.StripeSubscriptionId,
				"error":                  err.Error(),
			})
			return serverutils.BadGateway("We could not cancel the linked subscription with our payment provider. The estimate was not deleted.")
		}
	}

	return uow.EstimateRepository().Delete(ctx, estimateId)
}

// StartEstimateCheckout builds one hosted checkout for a batch of the
// customer's unpaid estimates. No local pending row is written; finalize
// recovers the estimate ids from session metadata.
func (s *estimateService) StartEstimateCheckout(ctx context.Context, userId uuid.UUID, req *dto.EstimateCheckoutRequest) (*dto.StartCheckoutResponse, error) {
	if len(req.EstimateIds) == 0 {
		return nil, serverutils.BadRequest("Select at least one estimate to pay.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.Unauthorized("User not found")
	}

	estimates, err := uow.EstimateRepository().FindAll(ctx,
		specification.ByIDs{IDs: req.EstimateIds},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(estimates) != len(req.EstimateIds) {
		return nil, serverutils.NotFound("One or more estimates could not be found.")
	}

	lineItems := make([]payments.LineItem, 0)
	estimateIds := make([]string, 0, len(estimates))
	for _, e := range estimates {
		if e.PaymentStatus != entity.EstimatePaymentPending {
			return nil, serverutils.BadRequest("One or more estimates have already been paid.")
		}
		switch e.Status {
		case entity.EstimateStatusSent, entity.EstimateStatusAccepted, entity.EstimateStatusActive:
		default:
			return nil, serverutils.BadRequest("One or more estimates are not ready for payment.")
		}
		lineItems = append(lineItems, estimateBillingLines(e)...)
		estimateIds = append(estimateIds, e.Id.String())
	}
	if len(lineItems) == 0 {
		return nil, serverutils.BadRequest("The selected estimates have nothing to bill.")
	}

	gwSession, err := s.gateway.CreateCheckoutSession(ctx, payments.CreateSessionInput{
		CustomerEmail: user.Email,
		SuccessURL:    fmt.Sprintf("%s/app/estimates/result?session_id={CHECKOUT_SESSION_ID}&outcome=success", s.frontendURL),
		CancelURL:     fmt.Sprintf("%s/app/estimates/result?outcome=cancelled", s.frontendURL),
		LineItems:     lineItems,
		Metadata: map[string]string{
			"userId":      userId.String(),
			"estimateIds": strings.Join(estimateIds, ","),
		},
	})
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			return nil, serverutils.ServiceUnavailable("Online checkout is not available right now. Please contact us to finish signing up.")
		}
		s.logger.Error("estimate", "failed to create estimate checkout session", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil, serverutils.BadGateway("We could not start checkout with our payment provider. Please try again.")
	}

	return &dto.StartCheckoutResponse{URL: gwSession.URL}, nil
}

func (s *estimateService) FinalizeEstimateCheckout(ctx context.Context, userId uuid.UUID, req *dto.FinalizeEstimateCheckoutRequest) (*dto.FinalizeEstimateCheckoutResponse, error) {
	if req.Outcome == "cancelled" {
		return &dto.FinalizeEstimateCheckoutResponse{
			Status:  "cancelled",
			Message: "Checkout was cancelled. Your estimates are unchanged.",
		}, nil
	}
	if req.SessionId == "" {
		return nil, serverutils.BadRequest("We could not confirm your checkout session. Please contact support.")
	}

	gwSession, err := s.gateway.GetCheckoutSession(ctx, req.SessionId)
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			return nil, serverutils.ServiceUnavailable("Online checkout is not available right now. Please contact us to finish signing up.")
		}
		s.logger.Error("estimate", "failed to retrieve estimate checkout session", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil, serverutils.BadGateway("We could not verify your payment with our provider. Please try again.")
	}

	ids := parseEstimateIds(gwSession.Metadata["estimateIds"])
	if len(ids) == 0 {
		return nil, serverutils.NotFound("We could not locate the estimates for this checkout session.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	estimates, err := uow.EstimateRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(estimates) == 0 {
		return nil, serverutils.NotFound("We could not locate the estimates for this checkout session.")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	paidIds := make([]string, 0, len(estimates))
	for _, e := range estimates {
		// Re-finalizing an already paid batch answers the same thing.
		if e.PaymentStatus == entity.EstimatePaymentPending {
			e.PaymentStatus = entity.EstimatePaymentPaid
			e.Status = entity.EstimateStatusActive
			e.PaidAt = &now
			if gwSession.SubscriptionId != "" {
				subId := gwSession.SubscriptionId
				e.StripeSubscriptionId = &subId
			}
			e.UpdatedAt = now
			if err := uow.EstimateRepository().Update(ctx, e); err != nil {
				return nil, err
			}
		}
		paidIds = append(paidIds, e.Id.String())
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.FinalizeEstimateCheckoutResponse{
		Status:      "completed",
		Message:     "Payment received. Your custom service plan is active.",
		EstimateIds: paidIds,
	}, nil
}

func (s *estimateService) findVisible(ctx context.Context, uow unitofwork.UnitOfWork, actorId uuid.UUID, isAdmin bool, estimateId uuid.UUID) (*entity.CustomEstimate, error) {
	specs := []specification.Specification{specification.ByID{ID: estimateId}}
	if !isAdmin {
		specs = append(specs, specification.UserOwnedBy{UserID: actorId})
	}

	estimate, err := uow.EstimateRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		// Someone else's estimate looks exactly like a missing one.
		return nil, serverutils.NotFound("Estimate not found")
	}
	return estimate, nil
}

// estimateBillingLines flattens an estimate into processor line items: one
// per priced line plus a synthetic adjustment line. Lines that round to zero
// or below are dropped since the processor rejects them.
func estimateBillingLines(e *entity.CustomEstimate) []payments.LineItem {
	lines := make([]payments.LineItem, 0, len(e.LineItems)+1)
	for _, it := range e.LineItems {
		cents := dollarsToCents(it.MonthlyRate)
		if cents <= 0 {
			continue
		}
		lines = append(lines, payments.LineItem{
			Name:        fmt.Sprintf("%s (%s)", it.Description, it.Frequency),
			AmountCents: cents,
			Quantity:    int64(it.Quantity),
		})
	}
	if cents := dollarsToCents(e.MonthlyAdjustment); cents > 0 {
		lines = append(lines, payments.LineItem{
			Name:        "Adjustment",
			AmountCents: cents,
			Quantity:    1,
		})
	}
	return lines
}

func parseEstimateIds(raw string) []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	for _, part := range strings.Split(raw, ",") {
		if id, err := uuid.Parse(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func toLineItems(inputs []dto.EstimateLineItemInput) []entity.EstimateLineItem {
	items := make([]entity.EstimateLineItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, entity.EstimateLineItem{
			Description: in.Description,
			Frequency:   in.Frequency,
			Quantity:    in.Quantity,
			MonthlyRate: in.MonthlyRate,
			Notes:       in.Notes,
		})
	}
	return items
}

func toServiceAddresses(inputs []dto.EstimateAddressInput) []entity.ServiceAddress {
	addresses := make([]entity.ServiceAddress, 0, len(inputs))
	for _, in := range inputs {
		addr := entity.ServiceAddress{
			Label:      in.Label,
			Street:     in.Street,
			City:       in.City,
			State:      in.State,
			PostalCode: in.PostalCode,
		}.Normalize()
		if addr.IsComplete() {
			addresses = append(addresses, addr)
		}
	}
	return addresses
}

func toEstimateResponse(e *entity.CustomEstimate) dto.EstimateResponse {
	return dto.EstimateResponse{
		Id:                  e.Id,
		UserId:              e.UserId,
		Status:              string(e.Status),
		PaymentStatus:       string(e.PaymentStatus),
		LineItems:           e.LineItems,
		MonthlyAdjustment:   e.MonthlyAdjustment,
		Subtotal:            e.Subtotal,
		Total:               e.Total,
		Addresses:           e.Addresses,
		Notes:               e.Notes,
		AdminNotes:          e.AdminNotes,
		PreferredServiceDay: e.PreferredServiceDay,
		AcceptedAt:          e.AcceptedAt,
		PaidAt:              e.PaidAt,
		CreatedAt:           e.CreatedAt,
	}
}
