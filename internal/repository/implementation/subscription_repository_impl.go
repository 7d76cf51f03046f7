package implementation

import (
	"context"
	"errors"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/mapper"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/contract"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"

	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) CountActive(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ?", string(entity.SubscriptionStatusActive)).
		Count(&count).Error
	return int(count), err
}

func (r *SubscriptionRepositoryImpl) MonthlyRecurringRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ?", string(entity.SubscriptionStatusActive)).
		Select("COALESCE(SUM(monthly_total), 0)").
		Scan(&total).Error
	return total, err
}
