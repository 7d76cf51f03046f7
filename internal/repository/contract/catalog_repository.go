package contract

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
)

type CatalogRepository interface {
	Create(ctx context.Context, offering *entity.ServiceOffering) error
	Update(ctx context.Context, offering *entity.ServiceOffering) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceOffering, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceOffering, error)
}
