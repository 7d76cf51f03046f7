// FILE: internal/service/fakes_test.go
package service

import (
	"context"
	"errors"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/payments"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/contract"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. Specifications are matched by
// type-switching on the concrete spec structs the services actually use.

type fakeStore struct {
	users         []*entity.User
	refreshTokens []*entity.UserRefreshToken
	resetTokens   []*entity.PasswordResetToken
	addresses     []*entity.Address
	offerings     []*entity.ServiceOffering
	quotes        []*entity.Quote
	checkouts     []*entity.CheckoutSession
	subscriptions []*entity.Subscription
	estimates     []*entity.CustomEstimate

	failSubWrite error
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) AddressRepository() contract.AddressRepository {
	return &fakeAddressRepo{store: u.store}
}

func (u *fakeUnitOfWork) CatalogRepository() contract.CatalogRepository {
	return &fakeCatalogRepo{store: u.store}
}

func (u *fakeUnitOfWork) QuoteRepository() contract.QuoteRepository {
	return &fakeQuoteRepo{store: u.store}
}

func (u *fakeUnitOfWork) CheckoutRepository() contract.CheckoutRepository {
	return &fakeCheckoutRepo{store: u.store}
}

func (u *fakeUnitOfWork) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubscriptionRepo{store: u.store}
}

func (u *fakeUnitOfWork) EstimateRepository() contract.EstimateRepository {
	return &fakeEstimateRepo{store: u.store}
}

// --- users ---

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	for i, u := range r.store.users {
		if u.Id == user.Id {
			r.store.users[i] = user
			return nil
		}
	}
	return errors.New("user not found")
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		}
	}
	return true
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int, error) {
	users, _ := r.FindAll(ctx, specs...)
	return len(users), nil
}

func (r *fakeUserRepo) CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	r.store.resetTokens = append(r.store.resetTokens, token)
	return nil
}

func (r *fakeUserRepo) FindResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	for _, tok := range r.store.resetTokens {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByToken); ok && tok.Token != s.Token {
				match = false
			}
		}
		if match {
			return tok, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	for _, tok := range r.store.resetTokens {
		if tok.Id == id {
			tok.Used = true
			return nil
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	r.store.refreshTokens = append(r.store.refreshTokens, token)
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	for _, tok := range r.store.refreshTokens {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByTokenHash); ok && tok.TokenHash != s.Hash {
				match = false
			}
		}
		if match {
			return tok, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, id uuid.UUID) error {
	for _, tok := range r.store.refreshTokens {
		if tok.Id == id {
			tok.Revoked = true
			return nil
		}
	}
	return nil
}

// --- addresses ---

type fakeAddressRepo struct {
	store *fakeStore
}

func matchAddress(a *entity.Address, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if a.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if a.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeAddressRepo) Create(ctx context.Context, address *entity.Address) error {
	r.store.addresses = append(r.store.addresses, address)
	return nil
}

func (r *fakeAddressRepo) Update(ctx context.Context, address *entity.Address) error {
	for i, a := range r.store.addresses {
		if a.Id == address.Id {
			r.store.addresses[i] = address
			return nil
		}
	}
	return errors.New("address not found")
}

func (r *fakeAddressRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, a := range r.store.addresses {
		if a.Id == id {
			r.store.addresses = append(r.store.addresses[:i], r.store.addresses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAddressRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error) {
	for _, a := range r.store.addresses {
		if matchAddress(a, specs) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAddressRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error) {
	var out []*entity.Address
	for _, a := range r.store.addresses {
		if matchAddress(a, specs) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) ClearDefaultForUser(ctx context.Context, userId uuid.UUID) error {
	for _, a := range r.store.addresses {
		if a.UserId == userId {
			a.IsDefault = false
		}
	}
	return nil
}

// --- catalog ---

type fakeCatalogRepo struct {
	store *fakeStore
}

func (r *fakeCatalogRepo) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	r.store.offerings = append(r.store.offerings, offering)
	return nil
}

func (r *fakeCatalogRepo) Update(ctx context.Context, offering *entity.ServiceOffering) error {
	return nil
}

func (r *fakeCatalogRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceOffering, error) {
	offerings, _ := r.FindAll(ctx, specs...)
	if len(offerings) == 0 {
		return nil, nil
	}
	return offerings[0], nil
}

func (r *fakeCatalogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceOffering, error) {
	onlyActive := false
	for _, spec := range specs {
		if _, ok := spec.(specification.ActiveOfferings); ok {
			onlyActive = true
		}
	}
	var out []*entity.ServiceOffering
	for _, o := range r.store.offerings {
		if onlyActive && !o.IsActive {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// --- quotes ---

type fakeQuoteRepo struct {
	store *fakeStore
}

func (r *fakeQuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	r.store.quotes = append(r.store.quotes, quote)
	return nil
}

func (r *fakeQuoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quote, error) {
	return r.store.quotes, nil
}

// --- checkouts ---

type fakeCheckoutRepo struct {
	store *fakeStore
}

func matchCheckout(c *entity.CheckoutSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if c.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != s.UserID {
				return false
			}
		case specification.ByStripeSessionID:
			if c.StripeSessionId == nil || *c.StripeSessionId != s.SessionID {
				return false
			}
		}
	}
	return true
}

func (r *fakeCheckoutRepo) Create(ctx context.Context, session *entity.CheckoutSession) error {
	r.store.checkouts = append(r.store.checkouts, session)
	return nil
}

func (r *fakeCheckoutRepo) Update(ctx context.Context, session *entity.CheckoutSession) error {
	for i, c := range r.store.checkouts {
		if c.Id == session.Id {
			r.store.checkouts[i] = session
			return nil
		}
	}
	return errors.New("checkout not found")
}

func (r *fakeCheckoutRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CheckoutSession, error) {
	for _, c := range r.store.checkouts {
		if matchCheckout(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCheckoutRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckoutSession, error) {
	var out []*entity.CheckoutSession
	for _, c := range r.store.checkouts {
		if matchCheckout(c, specs) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCheckoutRepo) GetTransactions(ctx context.Context, status string, limit, offset int) ([]*entity.CheckoutTransaction, error) {
	var out []*entity.CheckoutTransaction
	for _, c := range r.store.checkouts {
		if status != "" && string(c.Status) != status {
			continue
		}
		out = append(out, &entity.CheckoutTransaction{
			Id:           c.Id,
			UserId:       c.UserId,
			PlanName:     c.PlanName,
			MonthlyTotal: c.MonthlyTotal,
			Status:       c.Status,
			StripeStatus: c.StripeStatus,
			CreatedAt:    c.CreatedAt,
		})
	}
	return out, nil
}

// --- subscriptions ---

type fakeSubscriptionRepo struct {
	store *fakeStore
}

func matchSubscription(sub *entity.Subscription, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if sub.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if sub.UserId != s.UserID {
				return false
			}
		case specification.ByStripeSubscriptionID:
			if sub.StripeSubscriptionId == nil || *sub.StripeSubscriptionId != s.SubscriptionID {
				return false
			}
		}
	}
	return true
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	if r.store.failSubWrite != nil {
		return r.store.failSubWrite
	}
	r.store.subscriptions = append(r.store.subscriptions, subscription)
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, subscription *entity.Subscription) error {
	for i, sub := range r.store.subscriptions {
		if sub.Id == subscription.Id {
			r.store.subscriptions[i] = subscription
			return nil
		}
	}
	return errors.New("subscription not found")
}

func (r *fakeSubscriptionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	for _, sub := range r.store.subscriptions {
		if matchSubscription(sub, specs) {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, sub := range r.store.subscriptions {
		if matchSubscription(sub, specs) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, sub := range r.store.subscriptions {
		if sub.Status == entity.SubscriptionStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubscriptionRepo) MonthlyRecurringRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, sub := range r.store.subscriptions {
		if sub.Status == entity.SubscriptionStatusActive {
			total += sub.MonthlyTotal
		}
	}
	return total, nil
}

// --- estimates ---

type fakeEstimateRepo struct {
	store *fakeStore
}

func matchEstimate(e *entity.CustomEstimate, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if e.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if e.Id == id {
					found = true
				}
			}
			if !found {
				return false
			}
		case specification.UserOwnedBy:
			if e.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *fakeEstimateRepo) Create(ctx context.Context, estimate *entity.CustomEstimate) error {
	r.store.estimates = append(r.store.estimates, estimate)
	return nil
}

func (r *fakeEstimateRepo) Update(ctx context.Context, estimate *entity.CustomEstimate) error {
	for i, e := range r.store.estimates {
		if e.Id == estimate.Id {
			r.store.estimates[i] = estimate
			return nil
		}
	}
	return errors.New("estimate not found")
}

func (r *fakeEstimateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, e := range r.store.estimates {
		if e.Id == id {
			r.store.estimates = append(r.store.estimates[:i], r.store.estimates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeEstimateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomEstimate, error) {
	for _, e := range r.store.estimates {
		if matchEstimate(e, specs) {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEstimateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomEstimate, error) {
	var out []*entity.CustomEstimate
	for _, e := range r.store.estimates {
		if matchEstimate(e, specs) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEstimateRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	count := 0
	for _, e := range r.store.estimates {
		if string(e.Status) == status {
			count++
		}
	}
	return count, nil
}

// --- payment gateway ---

type fakeGateway struct {
	configured bool
	failCreate error
	failGet    error
	failItems  error
	failCancel error

	createdInput *payments.CreateSessionInput
	session      *payments.Session
	replaced     [][]payments.LineItem
	cancelled    []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{configured: true}
}

func (g *fakeGateway) CreateCheckoutSession(ctx context.Context, input payments.CreateSessionInput) (*payments.Session, error) {
	if !g.configured {
		return nil, payments.ErrNotConfigured
	}
	if g.failCreate != nil {
		return nil, g.failCreate
	}
	g.createdInput = &input
	if g.session == nil {
		g.session = &payments.Session{
			Id:       "cs_test_123",
			URL:      "https://checkout.stripe.test/cs_test_123",
			Status:   "open",
			Metadata: input.Metadata,
		}
	}
	return g.session, nil
}

func (g *fakeGateway) GetCheckoutSession(ctx context.Context, sessionId string) (*payments.Session, error) {
	if !g.configured {
		return nil, payments.ErrNotConfigured
	}
	if g.failGet != nil {
		return nil, g.failGet
	}
	if g.session != nil && g.session.Id == sessionId {
		return g.session, nil
	}
	return &payments.Session{Id: sessionId, Status: "complete", PaymentStatus: "paid"}, nil
}

func (g *fakeGateway) ReplaceSubscriptionItems(ctx context.Context, subscriptionId string, items []payments.LineItem) error {
	if !g.configured {
		return payments.ErrNotConfigured
	}
	if g.failItems != nil {
		return g.failItems
	}
	g.replaced = append(g.replaced, items)
	return nil
}

func (g *fakeGateway) CancelSubscription(ctx context.Context, subscriptionId string) error {
	if !g.configured {
		return payments.ErrNotConfigured
	}
	if g.failCancel != nil {
		return g.failCancel
	}
	g.cancelled = append(g.cancelled, subscriptionId)
	return nil
}

// --- notifications ---

type fakeNotifier struct {
	sent []dto.EmailMessage
}

func (n *fakeNotifier) Start(ctx context.Context) error { return nil }

func (n *fakeNotifier) Enqueue(ctx context.Context, msg dto.EmailMessage) {
	n.sent = append(n.sent, msg)
}

func (n *fakeNotifier) SendPreview(ctx context.Context, req *dto.NotificationPreviewRequest) error {
	return nil
}

// --- logger ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}

func (nopLogger) Sync() error { return nil }

func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) {
	return nil, nil
}
