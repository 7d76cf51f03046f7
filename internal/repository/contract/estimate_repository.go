package contract

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"

	"github.com/google/uuid"
)

type EstimateRepository interface {
	Create(ctx context.Context, estimate *entity.CustomEstimate) error
	Update(ctx context.Context, estimate *entity.CustomEstimate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomEstimate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomEstimate, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
