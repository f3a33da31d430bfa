package bootstrap

import (
	stdlog "log"
	"time"

	"nko-content-assistant/internal/config"
	"nko-content-assistant/internal/controller"
	"nko-content-assistant/internal/pkg/logger"
	"nko-content-assistant/internal/repository/memory"
	"nko-content-assistant/internal/repository/unitofwork"
	"nko-content-assistant/internal/service"
	"nko-content-assistant/pkg/events"
	"nko-content-assistant/pkg/generation"
	"nko-content-assistant/pkg/imagegen"
	"nko-content-assistant/pkg/llm/factory"
	"nko-content-assistant/pkg/wizard"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ConversationController controller.IConversationController
	OrganizationController controller.IOrganizationController

	// Background Services (Exposed for main.go to run)
	AuditConsumerService service.IAuditConsumerService

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	auditLogger := logger.NewIsolatedLogger("audit.log")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(pubSub, events.AuditTopic)
	auditConsumer := service.NewAuditConsumerService(pubSub, events.AuditTopic, auditLogger)

	// 3. Generation Backends
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
		cfg.Ai.Model,
	)
	if err != nil {
		stdlog.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	stdlog.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.Model)

	imageClient := imagegen.NewClient(cfg.ImageAPI.BaseURL, cfg.ImageAPI.Key, cfg.ImageAPI.Secret)

	genLogger := stdlog.New(stdlog.Writer(), "[generation] ", stdlog.LstdFlags)
	generator := generation.NewOrchestrator(llmProvider, imageClient, genLogger)
	generator.PollInterval = time.Duration(cfg.ImageAPI.PollEvery) * time.Second
	generator.MaxPolls = cfg.ImageAPI.MaxPolls
	generator.ImageWidth = cfg.ImageAPI.Width
	generator.ImageHeight = cfg.ImageAPI.Height

	// 4. Session Storage and Wizard
	sessionRepo := memory.NewSessionRepository()
	machine := wizard.NewMachine()

	// 5. Services
	orgService := service.NewOrganizationService(uowFactory, publisherService)
	conversationService := service.NewConversationService(
		sessionRepo,
		machine,
		orgService,
		generator,
		uowFactory,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	conversationController := controller.NewConversationController(conversationService)
	organizationController := controller.NewOrganizationController(orgService)

	return &Container{
		ConversationController: conversationController,
		OrganizationController: organizationController,
		AuditConsumerService:   auditConsumer,
		Logger:                 sysLogger,
	}
}
