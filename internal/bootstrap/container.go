package bootstrap

import (
	"context"
	"log"

	"beauty-advisor-be/internal/config"
	"beauty-advisor-be/internal/controller"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/contract"
	"beauty-advisor-be/internal/repository/implementation"
	"beauty-advisor-be/internal/repository/memory"
	"beauty-advisor-be/internal/repository/redisrepo"
	"beauty-advisor-be/internal/service"
	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/database"
	"beauty-advisor-be/pkg/llm/factory"
	"beauty-advisor-be/pkg/matching"
	"beauty-advisor-be/pkg/questionbank"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	QualificationController controller.IQualificationController
	ChatController          controller.IChatController
	AdminController         controller.IAdminController

	// Background services (run by main.go)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) (*Container, error) {
	ctx := context.Background()

	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Static data: catalog + question bank. A configured database takes
	// precedence for the catalog; the JSON file is the default provider.
	var catalogProvider catalog.Provider = catalog.NewJSONProvider(cfg.Data.CatalogPath)
	var recordRepo implementation.IQualificationRecordRepository

	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Printf("[WARN] Failed to connect to Postgres: %v. Using JSON catalog, skipping records", err)
		} else {
			catalogProvider = implementation.NewGormCatalogProvider(db)
			recordRepo = implementation.NewQualificationRecordRepository(db)
		}
	}

	catalogStore, err := catalog.NewStore(ctx, catalogProvider)
	if err != nil {
		return nil, err
	}
	bank, err := questionbank.NewBank(ctx, questionbank.NewJSONProvider(cfg.Data.QuestionsPath), cfg.App.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	engine := matching.NewEngine(catalogStore, bank, cfg.App.DefaultLanguage)

	// 3. Session store: Redis when configured, in-memory otherwise.
	var sessionRepo contract.ISessionRepository = memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.PurgeInterval)
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory sessions", err)
		} else {
			sessionRepo = redisrepo.NewSessionRepository(rdb, cfg.Session.TTL)
			log.Println("[INFO] Using Redis session store")
		}
	}

	// 4. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisherService := service.NewPublisherService(pubSub)
	consumerService := service.NewConsumerService(pubSub, recordRepo, sysLogger)

	// 5. External LLM collaborator (optional)
	llmProvider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM provider: %v. Chat uses template fallback", err)
		llmProvider = nil
	}
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 6. Services
	qualificationService := service.NewQualificationService(
		bank,
		catalogStore,
		engine,
		sessionRepo,
		publisherService,
		sysLogger,
		cfg.App.DefaultLanguage,
	)
	chatService := service.NewChatService(qualificationService, bank, sessionRepo, llmProvider, sysLogger)
	adminService := service.NewAdminService(catalogStore, bank, recordRepo, sysLogger)

	// 7. Controllers
	return &Container{
		QualificationController: controller.NewQualificationController(qualificationService),
		ChatController:          controller.NewChatController(chatService),
		AdminController:         controller.NewAdminController(adminService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}, nil
}
