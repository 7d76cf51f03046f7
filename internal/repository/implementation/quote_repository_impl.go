package implementation

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/mapper"
	"github.com/atlanteavila/trashpanda-sub000/internal/model"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/contract"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"

	"gorm.io/gorm"
)

type QuoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuoteMapper
}

func NewQuoteRepository(db *gorm.DB) contract.QuoteRepository {
	return &QuoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuoteMapper(),
	}
}

func (r *QuoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuoteRepositoryImpl) Create(ctx context.Context, quote *entity.Quote) error {
	m := r.mapper.ToModel(quote)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*quote = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quote, error) {
	var models []*model.Quote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Quote, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
