package contract

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"

	"github.com/google/uuid"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error)
	ClearDefaultForUser(ctx context.Context, userId uuid.UUID) error
}
