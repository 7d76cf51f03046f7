// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const catalogCacheKey = "catalog:active"

// ICatalogService serves the public service catalog. The list is read on
// every quote-builder page load, so it sits behind a short in-process cache.
type ICatalogService interface {
	ListOfferings(ctx context.Context) ([]dto.ServiceOfferingResponse, error)
	InvalidateCache()
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *catalogService) ListOfferings(ctx context.Context) ([]dto.ServiceOfferingResponse, error) {
	if cached, found := s.cache.Get(catalogCacheKey); found {
		return cached.([]dto.ServiceOfferingResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	offerings, err := uow.CatalogRepository().FindAll(ctx,
		specification.ActiveOfferings{},
		specification.OrderBy{Field: "sort_order", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ServiceOfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		responses = append(responses, dto.ServiceOfferingResponse{
			Id:               o.Id,
			Slug:             o.Slug,
			Name:             o.Name,
			Description:      o.Description,
			Unit:             o.Unit,
			MonthlyRate:      o.MonthlyRate,
			SavingsText:      o.SavingsText,
			DefaultFrequency: o.DefaultFrequency,
		})
	}

	s.cache.Set(catalogCacheKey, responses, gocache.DefaultExpiration)
	return responses, nil
}

func (s *catalogService) InvalidateCache() {
	s.cache.Delete(catalogCacheKey)
}
