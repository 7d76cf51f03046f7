package contract

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)

	// Dashboard stats
	CountActive(ctx context.Context) (int, error)
	MonthlyRecurringRevenue(ctx context.Context) (float64, error)
}
