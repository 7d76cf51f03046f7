// FILE: internal/service/quote_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const quoteDraftTTL = 30 * 24 * time.Hour

// IQuoteService backs the anonymous quote builder. Drafts are keyed by the
// visitor's quote token cookie and live in Redis; nothing touches Postgres
// until the visitor submits.
type IQuoteService interface {
	GetDraft(ctx context.Context, token string) (*dto.QuoteDraft, error)
	SaveDraft(ctx context.Context, token string, draft *dto.QuoteDraft) error
	Submit(ctx context.Context, token string, req *dto.SubmitQuoteRequest) error
}

type quoteService struct {
	uowFactory    unitofwork.RepositoryFactory
	redisClient   *redis.Client
	notifications INotificationService
	logger        logger.ILogger
	leadAlertTo   string
}

func NewQuoteService(
	uowFactory unitofwork.RepositoryFactory,
	redisClient *redis.Client,
	notifications INotificationService,
	log logger.ILogger,
	leadAlertTo string,
) IQuoteService {
	return &quoteService{
		uowFactory:    uowFactory,
		redisClient:   redisClient,
		notifications: notifications,
		logger:        log,
		leadAlertTo:   leadAlertTo,
	}
}

func draftKey(token string) string {
	return fmt.Sprintf("quote:draft:%s", token)
}

func (s *quoteService) GetDraft(ctx context.Context, token string) (*dto.QuoteDraft, error) {
	if token == "" || s.redisClient == nil {
		return &dto.QuoteDraft{Services: []entity.SelectedService{}}, nil
	}

	raw, err := s.redisClient.Get(ctx, draftKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return &dto.QuoteDraft{Services: []entity.SelectedService{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var draft dto.QuoteDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		// A corrupt draft is discarded rather than surfaced to the visitor.
		s.logger.Warn("quote", "discarding unreadable draft", map[string]interface{}{
			"token": token,
			"error": err.Error(),
		})
		return &dto.QuoteDraft{Services: []entity.SelectedService{}}, nil
	}
	if draft.Services == nil {
		draft.Services = []entity.SelectedService{}
	}
	return &draft, nil
}

func (s *quoteService) SaveDraft(ctx context.Context, token string, draft *dto.QuoteDraft) error {
	if token == "" {
		return serverutils.BadRequest("Missing quote token")
	}
	if s.redisClient == nil {
		return nil
	}

	draft.Services = entity.NormalizeServices(draft.Services)
	draft.Address = draft.Address.Normalize()

	payload, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	// Every save refreshes the 30 day window.
	return s.redisClient.Set(ctx, draftKey(token), payload, quoteDraftTTL).Err()
}

func (s *quoteService) Submit(ctx context.Context, token string, req *dto.SubmitQuoteRequest) error {
	services := entity.NormalizeServices(req.Services)
	if len(services) == 0 {
		return serverutils.BadRequest("Add at least one service to request a quote.")
	}

	quote := &entity.Quote{
		Id:          uuid.New(),
		Token:       token,
		Services:    services,
		ContactName: strings.TrimSpace(req.ContactName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     req.Address.Normalize(),
		Notes:       strings.TrimSpace(req.Notes),
		SubmittedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.QuoteRepository().Create(ctx, quote); err != nil {
		return err
	}

	if s.redisClient != nil && token != "" {
		if err := s.redisClient.Del(ctx, draftKey(token)).Err(); err != nil {
			s.logger.Warn("quote", "failed to clear submitted draft", map[string]interface{}{
				"token": token,
				"error": err.Error(),
			})
		}
	}

	if s.leadAlertTo != "" {
		s.notifications.Enqueue(ctx, dto.EmailMessage{
			Template:       dto.EmailTemplateLeadAlert,
			To:             s.leadAlertTo,
			ContactName:    quote.ContactName,
			ContactEmail:   quote.Email,
			AddressSummary: quote.Address.Summary(),
		})
	}
	return nil
}
