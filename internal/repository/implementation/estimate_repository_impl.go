package implementation

import (
	"context"
	"errors"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/mapper"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/contract"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstimateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EstimateMapper
}

func NewEstimateRepository(db *gorm.DB) contract.EstimateRepository {
	return &EstimateRepositoryImpl{
		db:     db,
		mapper: mapper.NewEstimateMapper(),
	}
}

func (r *EstimateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EstimateRepositoryImpl) Create(ctx context.Context, estimate *entity.CustomEstimate) error {
	m := r.mapper.ToModel(estimate)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*estimate = *r.mapper.ToEntity(m)
	return nil
}

func (r *EstimateRepositoryImpl) Update(ctx context.Context, estimate *entity.CustomEstimate) error {
	m := r.mapper.ToModel(estimate)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*estimate = *r.mapper.ToEntity(m)
	return nil
}

func (r *EstimateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CustomEstimate{}, id).Error
}

func (r *EstimateRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomEstimate, error) {
	var m model.CustomEstimate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EstimateRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomEstimate, error) {
	var models []*model.CustomEstimate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CustomEstimate, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *EstimateRepositoryImpl) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CustomEstimate{}).
		Where("status = ?", status).
		Count(&count).Error
	return int(count), err
}
