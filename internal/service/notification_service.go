// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/mailer"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// INotificationService is the async email pipeline. Producers call Enqueue
// and never wait on SMTP; the worker started by Start drains the topic.
// Every send failure is logged and swallowed.
type INotificationService interface {
	Start(ctx context.Context) error
	Enqueue(ctx context.Context, msg dto.EmailMessage)
	SendPreview(ctx context.Context, req *dto.NotificationPreviewRequest) error
}

type notificationService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		logger:       log,
	}
}

func (s *notificationService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *notificationService) Enqueue(ctx context.Context, emailMsg dto.EmailMessage) {
	payload, err := json.Marshal(emailMsg)
	if err != nil {
		s.logger.Error("notification", "failed to marshal email message", map[string]interface{}{
			"template": emailMsg.Template,
			"error":    err.Error(),
		})
		return
	}

	msg := message.NewMessage(uuid.New().String(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("notification", "failed to enqueue email", map[string]interface{}{
			"template": emailMsg.Template,
			"to":       emailMsg.To,
			"error":    err.Error(),
		})
	}
}

func (s *notificationService) processMessage(msg *message.Message) {
	// Always ack: a broken payload or a dead SMTP server must not wedge the
	// channel, emails are best effort.
	defer msg.Ack()

	var emailMsg dto.EmailMessage
	if err := json.Unmarshal(msg.Payload, &emailMsg); err != nil {
		s.logger.Error("notification", "failed to unmarshal email message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := s.dispatch(emailMsg); err != nil {
		s.logger.Error("notification", "failed to send email", map[string]interface{}{
			"template": emailMsg.Template,
			"to":       emailMsg.To,
			"error":    err.Error(),
		})
		return
	}

	s.logger.Info("notification", "email sent", map[string]interface{}{
		"template": emailMsg.Template,
		"to":       emailMsg.To,
	})
}

func (s *notificationService) dispatch(emailMsg dto.EmailMessage) error {
	switch emailMsg.Template {
	case dto.EmailTemplateWelcome:
		return s.emailService.SendWelcome(emailMsg.To, emailMsg.FullName)
	case dto.EmailTemplateResetToken:
		return s.emailService.SendResetToken(emailMsg.To, emailMsg.ResetToken)
	case dto.EmailTemplateEstimateReview:
		return s.emailService.SendEstimateReview(emailMsg.To, emailMsg.FullName, emailMsg.Total)
	case dto.EmailTemplateReceipt:
		return s.emailService.SendCheckoutReceipt(emailMsg.To, emailMsg.PlanName, emailMsg.Total)
	case dto.EmailTemplateLeadAlert:
		return s.emailService.SendLeadAlert(emailMsg.To, emailMsg.ContactName, emailMsg.ContactEmail, emailMsg.AddressSummary)
	default:
		return fmt.Errorf("unknown email template: %s", emailMsg.Template)
	}
}

// SendPreview sends a template synchronously so an admin can eyeball the
// rendering. Unlike the async path, failures are returned.
func (s *notificationService) SendPreview(ctx context.Context, req *dto.NotificationPreviewRequest) error {
	sample := dto.EmailMessage{
		Template:       req.Template,
		To:             req.Email,
		FullName:       "Sample Customer",
		PlanName:       "Weekly Bin Cleaning",
		Total:          74.99,
		ContactName:    "Sample Lead",
		ContactEmail:   "lead@example.com",
		AddressSummary: "123 Main St, Austin, TX, 78701",
	}
	if err := s.dispatch(sample); err != nil {
		return serverutils.BadGateway("Could not send the preview email.")
	}
	return nil
}
