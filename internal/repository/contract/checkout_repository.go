package contract

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
)

type CheckoutRepository interface {
	Create(ctx context.Context, session *entity.CheckoutSession) error
	Update(ctx context.Context, session *entity.CheckoutSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CheckoutSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckoutSession, error)

	// Admin view: completed sessions joined with the purchasing user.
	GetTransactions(ctx context.Context, status string, limit, offset int) ([]*entity.CheckoutTransaction, error)
}
