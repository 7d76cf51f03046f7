// FILE: internal/service/subscription_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seedSubscription(factory *fakeFactory, userId uuid.UUID) *entity.Subscription {
	sub := &entity.Subscription{
		Id:     uuid.New(),
		UserId: userId,
		Services: []entity.SelectedService{
			{ServiceId: "svc-1", Name: "Trash Bin Cleaning", Frequency: "monthly", Quantity: 2, MonthlyRate: 9.99},
		},
		Address:      entity.ServiceAddress{Street: "123 Main St", City: "Austin", State: "TX", PostalCode: "78701"},
		MonthlyTotal: 19.98,
		Status:       entity.SubscriptionStatusActive,
	}
	factory.store.subscriptions = append(factory.store.subscriptions, sub)
	return sub
}

func TestListSubscriptionsOwnOnly(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSubscriptionService(factory)

	userId := uuid.New()
	seedSubscription(factory, userId)
	seedSubscription(factory, uuid.New())

	res, err := svc.ListSubscriptions(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestUpdateSubscriptionNotOwnedIsNotFound(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSubscriptionService(factory)

	sub := seedSubscription(factory, uuid.New())

	_, err := svc.UpdateSubscription(context.Background(), uuid.New(), sub.Id, fullUpdateRequest())
	assert.Equal(t, 404, apiErrorCode(t, err))
}

// Updates are full replacements, so every request restates services and
// address.
func fullUpdateRequest() *dto.UpdateSubscriptionRequest {
	return &dto.UpdateSubscriptionRequest{
		Services: []entity.SelectedService{
			{ServiceId: "svc-1", Name: "Trash Bin Cleaning", Frequency: "monthly", Quantity: 2, MonthlyRate: 9.99},
		},
		Address: entity.ServiceAddress{Street: "123 Main St", City: "Austin", State: "TX", PostalCode: "78701"},
	}
}

func TestUpdateSubscriptionRequiresServices(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSubscriptionService(factory)

	userId := uuid.New()
	sub := seedSubscription(factory, userId)

	req := fullUpdateRequest()
	req.Services = []entity.SelectedService{{ServiceId: "", Name: "", Frequency: ""}}

	_, err := svc.UpdateSubscription(context.Background(), userId, sub.Id, req)
	assert.Equal(t, 400, apiErrorCode(t, err))
	assert.EqualError(t, err, "A subscription needs at least one service.")

	// Omitting services entirely is the same failure.
	_, err = svc.UpdateSubscription(context.Background(), userId, sub.Id, &dto.UpdateSubscriptionRequest{
		Address: fullUpdateRequest().Address,
	})
	assert.Equal(t, 400, apiErrorCode(t, err))
}

func TestUpdateSubscriptionRequiresCompleteAddress(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSubscriptionService(factory)

	userId := uuid.New()
	sub := seedSubscription(factory, userId)

	req := fullUpdateRequest()
	req.Address = entity.ServiceAddress{Street: "500 New St"}

	_, err := svc.UpdateSubscription(context.Background(), userId, sub.Id, req)
	assert.Equal(t, 400, apiErrorCode(t, err))
	assert.EqualError(t, err, "Provide a complete address before updating the subscription.")
}

func TestUpdateSubscriptionRecomputesTotal(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSubscriptionService(factory)

	userId := uuid.New()
	sub := seedSubscription(factory, userId)

	req := fullUpdateRequest()
	req.Services = []entity.SelectedService{
		{ServiceId: "svc-2", Name: "Valet", Frequency: "weekly", Quantity: 1, MonthlyRate: 24.99},
	}

	res, err := svc.UpdateSubscription(context.Background(), userId, sub.Id, req)
	assert.NoError(t, err)
	assert.Equal(t, 24.99, res.MonthlyTotal)
	assert.Len(t, res.Services, 1)
}

func TestUpdateSubscriptionIgnoresUnknownStatus(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSubscriptionService(factory)

	userId := uuid.New()
	sub := seedSubscription(factory, userId)

	bogus := "archived"
	req := fullUpdateRequest()
	req.Status = &bogus
	res, err := svc.UpdateSubscription(context.Background(), userId, sub.Id, req)
	assert.NoError(t, err)
	assert.Equal(t, "active", res.Status)

	paused := "paused"
	req = fullUpdateRequest()
	req.Status = &paused
	res, err = svc.UpdateSubscription(context.Background(), userId, sub.Id, req)
	assert.NoError(t, err)
	assert.Equal(t, "paused", res.Status)
}
