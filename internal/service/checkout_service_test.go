// FILE: internal/service/checkout_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/payments"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func apiErrorCode(t *testing.T, err error) int {
	t.Helper()
	var apiErr *serverutils.ApiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected ApiError, got %v", err)
	}
	return apiErr.Code
}

type checkoutFixture struct {
	factory  *fakeFactory
	gateway  *fakeGateway
	notifier *fakeNotifier
	service  ICheckoutService
	userId   uuid.UUID
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	factory := newFakeFactory()
	gateway := newFakeGateway()
	notifier := &fakeNotifier{}

	userId := uuid.New()
	factory.store.users = append(factory.store.users, &entity.User{
		Id:       userId,
		Email:    "customer@example.com",
		FullName: "Pat Customer",
		Status:   entity.UserStatusActive,
	})

	svc := NewCheckoutService(factory, gateway, notifier, nil, nopLogger{}, "http://localhost:5173")

	return &checkoutFixture{
		factory:  factory,
		gateway:  gateway,
		notifier: notifier,
		service:  svc,
		userId:   userId,
	}
}

func validStartRequest() *dto.StartCheckoutRequest {
	return &dto.StartCheckoutRequest{
		Services: []entity.SelectedService{
			{ServiceId: "svc-1", Name: "Trash Bin Cleaning", Frequency: "monthly", Quantity: 2, MonthlyRate: 9.99},
		},
		Address: entity.ServiceAddress{
			Street:     "123 Main St",
			City:       "Austin",
			State:      "tx",
			PostalCode: "78701",
		},
		PlanId:   "standard",
		PlanName: "Standard Plan",
	}
}

func TestStartCheckoutRequiresServices(t *testing.T) {
	f := newCheckoutFixture(t)

	req := validStartRequest()
	req.Services = []entity.SelectedService{{ServiceId: "", Name: "", Frequency: ""}}

	_, err := f.service.StartCheckout(context.Background(), f.userId, req)
	assert.Equal(t, 400, apiErrorCode(t, err))
	assert.EqualError(t, err, "Add at least one service before checking out.")
}

func TestStartCheckoutRequiresCompleteAddress(t *testing.T) {
	f := newCheckoutFixture(t)

	req := validStartRequest()
	req.Address.City = ""

	_, err := f.service.StartCheckout(context.Background(), f.userId, req)
	assert.Equal(t, 400, apiErrorCode(t, err))
	assert.EqualError(t, err, "Provide a complete address before checking out.")
}

func TestStartCheckoutGatewayNotConfigured(t *testing.T) {
	f := newCheckoutFixture(t)
	f.gateway.configured = false

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.Equal(t, 503, apiErrorCode(t, err))
}

func TestStartCheckoutGatewayFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	f.gateway.failCreate = errors.New("stripe is down")

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.Equal(t, 502, apiErrorCode(t, err))
}

func TestStartCheckoutHappyPath(t *testing.T) {
	f := newCheckoutFixture(t)

	res, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_123", res.URL)

	// A pending row is written and the provider session id stored back.
	assert.Len(t, f.factory.store.checkouts, 1)
	checkout := f.factory.store.checkouts[0]
	assert.Equal(t, entity.CheckoutStatusPending, checkout.Status)
	assert.NotNil(t, checkout.StripeSessionId)
	assert.Equal(t, "cs_test_123", *checkout.StripeSessionId)

	// The total is recomputed server side: 2 x 9.99.
	assert.Equal(t, 19.98, checkout.MonthlyTotal)

	// Metadata lets finalize recover the row if the id write-back is lost.
	assert.Equal(t, checkout.Id.String(), f.gateway.createdInput.Metadata["checkoutId"])
	assert.Equal(t, f.userId.String(), f.gateway.createdInput.Metadata["userId"])
	assert.Equal(t, "123 Main St, Austin, TX, 78701", f.gateway.createdInput.Metadata["addressSummary"])
	assert.Equal(t, "customer@example.com", f.gateway.createdInput.CustomerEmail)
}

func TestFinalizeCancelledWithoutSession(t *testing.T) {
	f := newCheckoutFixture(t)

	res, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		Outcome: "cancelled",
	})
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
	assert.Equal(t, "Checkout was cancelled before a session could be created.", res.Message)
}

func TestFinalizeSuccessWithoutSessionIsRejected(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		Outcome: "success",
	})
	assert.Equal(t, 400, apiErrorCode(t, err))
}

func TestFinalizeUnknownSession(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		SessionId: "cs_missing",
		Outcome:   "success",
	})
	assert.Equal(t, 404, apiErrorCode(t, err))
}

func TestFinalizeCancelKeepsSelections(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.NoError(t, err)

	res, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		SessionId: "cs_test_123",
		Outcome:   "cancelled",
	})
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
	assert.Equal(t, "Checkout was cancelled. Your selections are still saved.", res.Message)

	checkout := f.factory.store.checkouts[0]
	assert.Equal(t, entity.CheckoutStatusCancelled, checkout.Status)
	assert.NotNil(t, checkout.CompletedAt)
	// The snapshot survives a cancel.
	assert.NotEmpty(t, checkout.Services)
}

func TestFinalizeSuccessCompletesAndUpserts(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.NoError(t, err)

	// The customer paid on the hosted page.
	f.gateway.session.Status = "complete"
	f.gateway.session.PaymentStatus = "paid"
	f.gateway.session.CustomerId = "cus_123"
	f.gateway.session.SubscriptionId = "sub_123"

	res, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		SessionId: "cs_test_123",
		Outcome:   "success",
	})
	assert.NoError(t, err)
	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, "Your subscription is active. Welcome aboard!", res.Message)
	assert.Equal(t, "complete", res.StripeStatus)
	assert.Equal(t, "paid", res.StripePaymentStatus)

	checkout := f.factory.store.checkouts[0]
	assert.Equal(t, entity.CheckoutStatusCompleted, checkout.Status)
	assert.Equal(t, "cus_123", checkout.StripeCustomerId)

	// The local subscription mirror was created from the snapshot.
	assert.Len(t, f.factory.store.subscriptions, 1)
	sub := f.factory.store.subscriptions[0]
	assert.Equal(t, "sub_123", *sub.StripeSubscriptionId)
	assert.Equal(t, entity.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, 19.98, sub.MonthlyTotal)

	// A receipt went out.
	assert.Len(t, f.notifier.sent, 1)
	assert.Equal(t, dto.EmailTemplateReceipt, f.notifier.sent[0].Template)
}

func TestFinalizeSuccessIsIdempotent(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.NoError(t, err)

	f.gateway.session.Status = "complete"
	f.gateway.session.PaymentStatus = "paid"
	f.gateway.session.SubscriptionId = "sub_123"

	req := &dto.FinalizeCheckoutRequest{SessionId: "cs_test_123", Outcome: "success"}

	_, err = f.service.FinalizeCheckout(context.Background(), f.userId, req)
	assert.NoError(t, err)

	res, err := f.service.FinalizeCheckout(context.Background(), f.userId, req)
	assert.NoError(t, err)
	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, "Your subscription is already active.", res.Message)

	// The repeat did not duplicate the subscription mirror.
	assert.Len(t, f.factory.store.subscriptions, 1)
}

func TestFinalizeSucceedsWhenSubscriptionSyncFails(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.NoError(t, err)

	f.gateway.session.Status = "complete"
	f.gateway.session.PaymentStatus = "paid"
	f.gateway.session.SubscriptionId = "sub_123"
	f.factory.store.failSubWrite = errors.New("duplicate key value violates unique constraint")

	// The customer paid; a broken mirror write must not turn that into an
	// error response.
	res, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		SessionId: "cs_test_123",
		Outcome:   "success",
	})
	assert.NoError(t, err)
	assert.Equal(t, "completed", res.Status)

	assert.Equal(t, entity.CheckoutStatusCompleted, f.factory.store.checkouts[0].Status)
	assert.Empty(t, f.factory.store.subscriptions)
}

func TestFinalizeTwoPendingRowsOneSubscription(t *testing.T) {
	f := newCheckoutFixture(t)

	// Two pending checkouts whose provider sessions resolved to the same
	// external subscription: the second finalize must update, not duplicate.
	first := "cs_first"
	second := "cs_second"
	for _, sessionId := range []string{first, second} {
		id := sessionId
		f.factory.store.checkouts = append(f.factory.store.checkouts, &entity.CheckoutSession{
			Id:              uuid.New(),
			UserId:          f.userId,
			StripeSessionId: &id,
			Services:        []entity.SelectedService{{ServiceId: "svc-1", Name: "Trash Bin Cleaning", Frequency: "monthly", Quantity: 2, MonthlyRate: 9.99}},
			Address:         entity.ServiceAddress{Street: "123 Main St", City: "Austin", State: "TX", PostalCode: "78701"},
			MonthlyTotal:    19.98,
			Status:          entity.CheckoutStatusPending,
			CreatedAt:       time.Now(),
		})
	}

	for _, sessionId := range []string{first, second} {
		f.gateway.session = &payments.Session{
			Id:             sessionId,
			Status:         "complete",
			PaymentStatus:  "paid",
			SubscriptionId: "sub_123",
		}
		res, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
			SessionId: sessionId,
			Outcome:   "success",
		})
		assert.NoError(t, err)
		assert.Equal(t, "completed", res.Status)
	}

	assert.Len(t, f.factory.store.subscriptions, 1)
	assert.Equal(t, "sub_123", *f.factory.store.subscriptions[0].StripeSubscriptionId)
}

func TestFinalizeRecoversRowFromMetadata(t *testing.T) {
	f := newCheckoutFixture(t)

	// The provider call succeeded but the session id was never written back.
	checkout := &entity.CheckoutSession{
		Id:       uuid.New(),
		UserId:   f.userId,
		Services: []entity.SelectedService{{ServiceId: "svc-1", Name: "Valet", Frequency: "weekly", Quantity: 1, MonthlyRate: 24.99}},
		Address:  entity.ServiceAddress{Street: "123 Main St", City: "Austin", State: "TX", PostalCode: "78701"},
		Status:   entity.CheckoutStatusPending,
		CreatedAt: time.Now(),
	}
	f.factory.store.checkouts = append(f.factory.store.checkouts, checkout)

	f.gateway.session = &payments.Session{
		Id:            "cs_orphan",
		Status:        "complete",
		PaymentStatus: "paid",
		Metadata:      map[string]string{"checkoutId": checkout.Id.String()},
	}

	res, err := f.service.FinalizeCheckout(context.Background(), f.userId, &dto.FinalizeCheckoutRequest{
		SessionId: "cs_orphan",
		Outcome:   "success",
	})
	assert.NoError(t, err)
	assert.Equal(t, "completed", res.Status)

	assert.NotNil(t, checkout.StripeSessionId)
	assert.Equal(t, "cs_orphan", *checkout.StripeSessionId)
}

func TestFinalizeOtherUsersSessionIsNotFound(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.StartCheckout(context.Background(), f.userId, validStartRequest())
	assert.NoError(t, err)

	stranger := uuid.New()
	f.factory.store.users = append(f.factory.store.users, &entity.User{
		Id: stranger, Email: "other@example.com", Status: entity.UserStatusActive,
	})

	_, err = f.service.FinalizeCheckout(context.Background(), stranger, &dto.FinalizeCheckoutRequest{
		SessionId: "cs_test_123",
		Outcome:   "success",
	})
	assert.Equal(t, 404, apiErrorCode(t, err))
}
