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

type AddressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AddressMapper
}

func NewAddressRepository(db *gorm.DB) contract.AddressRepository {
	return &AddressRepositoryImpl{
		db:     db,
		mapper: mapper.NewAddressMapper(),
	}
}

func (r *AddressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AddressRepositoryImpl) Create(ctx context.Context, address *entity.Address) error {
	m := r.mapper.ToModel(address)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*address = *r.mapper.ToEntity(m)
	return nil
}

func (r *AddressRepositoryImpl) Update(ctx context.Context, address *entity.Address) error {
	m := r.mapper.ToModel(address)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*address = *r.mapper.ToEntity(m)
	return nil
}

func (r *AddressRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Address{}, id).Error
}

func (r *AddressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error) {
	var m model.Address
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AddressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error) {
	var models []*model.Address
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Address, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *AddressRepositoryImpl) ClearDefaultForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Address{}).
		Where("user_id = ?", userId).
		Update("is_default", false).Error
}
