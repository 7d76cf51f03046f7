package bootstrap

import (
	"context"
	"log"
	"strings"

	"github.com/atlanteavila/trashpanda-sub000/internal/config"
	"github.com/atlanteavila/trashpanda-sub000/internal/controller"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/logger"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/mailer"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/payments"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"
	"github.com/atlanteavila/trashpanda-sub000/internal/service"

	pktNats "github.com/atlanteavila/trashpanda-sub000/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	UserController         controller.IUserController
	CatalogController      controller.ICatalogController
	QuoteController        controller.IQuoteController
	CheckoutController     controller.ICheckoutController
	SubscriptionController controller.ISubscriptionController
	EstimateController     controller.IEstimateController
	AdminController        controller.IAdminController

	// Background worker, main.go starts it
	NotificationService service.INotificationService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	allowlist := serverutils.NewAdminAllowlist(cfg.Admin.Emails)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	gateway := payments.NewStripeGateway(payments.StripeConfig{
		SecretKey: cfg.Stripe.SecretKey,
		ProductId: cfg.Stripe.ProductId,
		Currency:  cfg.Stripe.Currency,
	})
	if !gateway.Configured() {
		log.Printf("[WARN] Stripe secret key not set; checkout endpoints will answer 503")
	}

	// 3. Services
	notificationService := service.NewNotificationService(
		pubSub,
		cfg.Notifications.EmailTopic,
		emailService,
		sysLogger,
	)

	leadAlertTo := cfg.Admin.LeadAlertEmail
	if leadAlertTo == "" {
		leadAlertTo = firstEmail(cfg.Admin.Emails)
	}

	authService := service.NewAuthService(uowFactory, notificationService, natsPub, allowlist)
	userService := service.NewUserService(uowFactory, allowlist)
	catalogService := service.NewCatalogService(uowFactory)
	quoteService := service.NewQuoteService(uowFactory, rdb, notificationService, sysLogger, leadAlertTo)
	checkoutService := service.NewCheckoutService(uowFactory, gateway, notificationService, natsPub, sysLogger, cfg.App.ClientURL)
	subscriptionService := service.NewSubscriptionService(uowFactory)
	estimateService := service.NewEstimateService(uowFactory, gateway, notificationService, sysLogger, cfg.App.ClientURL)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		UserController:         controller.NewUserController(userService),
		CatalogController:      controller.NewCatalogController(catalogService),
		QuoteController:        controller.NewQuoteController(quoteService),
		CheckoutController:     controller.NewCheckoutController(checkoutService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		EstimateController:     controller.NewEstimateController(estimateService, allowlist),
		AdminController:        controller.NewAdminController(adminService, notificationService, allowlist),

		NotificationService: notificationService,
		Logger:              sysLogger,
	}
}

func firstEmail(csv string) string {
	return strings.TrimSpace(strings.SplitN(csv, ",", 2)[0])
}
