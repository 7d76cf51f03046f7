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

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CatalogRepositoryImpl) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	m := r.mapper.ToModel(offering)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*offering = *r.mapper.ToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) Update(ctx context.Context, offering *entity.ServiceOffering) error {
	m := r.mapper.ToModel(offering)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*offering = *r.mapper.ToEntity(m)
	return nil
}

func (r *CatalogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceOffering, error) {
	var m model.ServiceOffering
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceOffering, error) {
	var models []*model.ServiceOffering
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ServiceOffering, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
