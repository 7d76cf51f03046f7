// FILE: internal/service/admin_service.go
package service

import (
	"context"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"
)

type IAdminService interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GetTransactions(ctx context.Context, status string, limit, offset int) ([]dto.TransactionResponse, error)
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAdminService {
	return &adminService{uowFactory: uowFactory, logger: log}
}

func (s *adminService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	activeSubs, err := uow.SubscriptionRepository().CountActive(ctx)
	if err != nil {
		return nil, err
	}

	pendingEstimates, err := uow.EstimateRepository().CountByStatus(ctx, string(entity.EstimateStatusSent))
	if err != nil {
		return nil, err
	}

	mrr, err := uow.SubscriptionRepository().MonthlyRecurringRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalUsers:              totalUsers,
		ActiveSubscriptions:     activeSubs,
		PendingEstimates:        pendingEstimates,
		MonthlyRecurringRevenue: entity.RoundCents(mrr),
	}, nil
}

func (s *adminService) GetTransactions(ctx context.Context, status string, limit, offset int) ([]dto.TransactionResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	transactions, err := uow.CheckoutRepository().GetTransactions(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp := dto.TransactionResponse{
			Id:           t.Id,
			UserEmail:    t.UserEmail,
			PlanName:     t.PlanName,
			MonthlyTotal: t.MonthlyTotal,
			Status:       string(t.Status),
			StripeStatus: t.StripeStatus,
			CreatedAt:    t.CreatedAt,
		}
		if t.StripeSessionId != nil {
			resp.StripeSessionId = *t.StripeSessionId
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}
