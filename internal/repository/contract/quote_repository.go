package contract

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quote, error)
}
