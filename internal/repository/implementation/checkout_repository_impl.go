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

type CheckoutRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CheckoutMapper
}

func NewCheckoutRepository(db *gorm.DB) contract.CheckoutRepository {
	return &CheckoutRepositoryImpl{
		db:     db,
		mapper: mapper.NewCheckoutMapper(),
	}
}

func (r *CheckoutRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckoutRepositoryImpl) Create(ctx context.Context, session *entity.CheckoutSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *CheckoutRepositoryImpl) Update(ctx context.Context, session *entity.CheckoutSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *CheckoutRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CheckoutSession, error) {
	var m model.CheckoutSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CheckoutRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckoutSession, error) {
	var models []*model.CheckoutSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CheckoutSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CheckoutRepositoryImpl) GetTransactions(ctx context.Context, status string, limit, offset int) ([]*entity.CheckoutTransaction, error) {
	var results []*entity.CheckoutTransaction

	query := r.db.WithContext(ctx).Table("checkout_sessions").
		Select(`
			checkout_sessions.id,
			checkout_sessions.user_id,
			users.email as user_email,
			checkout_sessions.plan_name,
			checkout_sessions.monthly_total,
			checkout_sessions.status,
			checkout_sessions.stripe_status,
			checkout_sessions.stripe_session_id,
			checkout_sessions.created_at
		`).
		Joins("JOIN users ON checkout_sessions.user_id = users.id")

	if status != "" {
		query = query.Where("checkout_sessions.status = ?", status)
	}

	err := query.Order("checkout_sessions.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
