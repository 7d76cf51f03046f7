package unitofwork

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AddressRepository() contract.AddressRepository
	CatalogRepository() contract.CatalogRepository
	QuoteRepository() contract.QuoteRepository
	CheckoutRepository() contract.CheckoutRepository
	SubscriptionRepository() contract.SubscriptionRepository
	EstimateRepository() contract.EstimateRepository
}
