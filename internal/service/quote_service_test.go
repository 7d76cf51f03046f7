// FILE: internal/service/quote_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"

	"github.com/stretchr/testify/assert"
)

// The quote service tolerates a missing Redis client: drafts degrade to
// empty, submits still persist.

func TestGetDraftWithoutRedisIsEmpty(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuoteService(factory, nil, &fakeNotifier{}, nopLogger{}, "")

	draft, err := svc.GetDraft(context.Background(), "some-token")
	assert.NoError(t, err)
	assert.NotNil(t, draft)
	assert.Empty(t, draft.Services)
}

func TestSaveDraftRequiresToken(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuoteService(factory, nil, &fakeNotifier{}, nopLogger{}, "")

	err := svc.SaveDraft(context.Background(), "", &dto.QuoteDraft{})
	assert.Equal(t, 400, apiErrorCode(t, err))
}

func TestSubmitRequiresServices(t *testing.T) {
	factory := newFakeFactory()
	svc := NewQuoteService(factory, nil, &fakeNotifier{}, nopLogger{}, "")

	err := svc.Submit(context.Background(), "tok", &dto.SubmitQuoteRequest{})
	assert.Equal(t, 400, apiErrorCode(t, err))
	assert.EqualError(t, err, "Add at least one service to request a quote.")
}

func TestSubmitPersistsQuoteAndAlertsLead(t *testing.T) {
	factory := newFakeFactory()
	notifier := &fakeNotifier{}
	svc := NewQuoteService(factory, nil, notifier, nopLogger{}, "sales@trashpanda.com")

	err := svc.Submit(context.Background(), "tok", &dto.SubmitQuoteRequest{
		Services: []entity.SelectedService{
			{ServiceId: "svc-1", Name: "Trash Bin Cleaning", Frequency: "monthly", Quantity: 1, MonthlyRate: 9.99},
		},
		ContactName: "  Pat Customer ",
		Email:       "Pat@Example.com",
		Address:     entity.ServiceAddress{Street: "123 Main St", City: "Austin", State: "tx", PostalCode: "78701"},
	})
	assert.NoError(t, err)

	assert.Len(t, factory.store.quotes, 1)
	quote := factory.store.quotes[0]
	assert.Equal(t, "Pat Customer", quote.ContactName)
	assert.Equal(t, "pat@example.com", quote.Email)
	assert.Equal(t, "TX", quote.Address.State)

	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, dto.EmailTemplateLeadAlert, notifier.sent[0].Template)
	assert.Equal(t, "sales@trashpanda.com", notifier.sent[0].To)
}

func TestSubmitWithoutLeadAlertAddressIsQuiet(t *testing.T) {
	factory := newFakeFactory()
	notifier := &fakeNotifier{}
	svc := NewQuoteService(factory, nil, notifier, nopLogger{}, "")

	err := svc.Submit(context.Background(), "tok", &dto.SubmitQuoteRequest{
		Services: []entity.SelectedService{
			{ServiceId: "svc-1", Name: "Trash Bin Cleaning", Frequency: "monthly", Quantity: 1, MonthlyRate: 9.99},
		},
	})
	assert.NoError(t, err)
	assert.Empty(t, notifier.sent)
}
