package bootstrap

import (
	"context"
	"log"
	"os"

	"chattyg-be/internal/config"
	"chattyg-be/internal/controller"
	"chattyg-be/internal/handler"
	"chattyg-be/internal/pkg/logger"
	"chattyg-be/internal/repository/memory"
	"chattyg-be/internal/repository/unitofwork"
	"chattyg-be/internal/service"
	"chattyg-be/internal/websocket"
	"chattyg-be/pkg/embedding"
	"chattyg-be/pkg/llm/factory"
	pkgNats "chattyg-be/pkg/nats"
	"chattyg-be/pkg/rag/response"
	"chattyg-be/pkg/rag/search"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	EmbeddingController controller.IEmbeddingController
	MessageController   controller.IMessageController
	ChannelController   controller.IChannelController

	// Background Services (Exposed for main.go to run)
	ConsumerService      service.IConsumerService
	EmbeddingSyncService service.IEmbeddingSyncService

	// WebSockets & Feed
	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub

	// System Logger (Exposed for the error handler)
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider("", cfg.Keys.OpenAI, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory cache for question vectors
	embeddingCache := memory.NewEmbeddingCache()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/feed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. RAG pipeline components
	ragLogger := log.New(os.Stdout, "[rag] ", log.LstdFlags)
	retriever := search.NewRetriever(ragLogger)
	generator := response.NewGenerator(llmProvider, ragLogger)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	embeddingSyncService := service.NewEmbeddingSyncService(
		uowFactory,
		embeddingProvider,
		cfg.Assistant.SyncBatchSize,
	)

	assistantService := service.NewAssistantService(
		uowFactory,
		embeddingProvider,
		embeddingCache,
		retriever,
		generator,
		natsPub,
		cfg.Assistant,
	)

	messageService := service.NewMessageService(uowFactory, publisherService, natsPub)
	channelService := service.NewChannelService(uowFactory)

	// 6. Feed worker (NATS -> websocket fan-out)
	if natsSub != nil {
		feedService := service.NewFeedService(natsSub, wsHub)
		if err := feedService.Start(); err != nil {
			log.Printf("[WARN] Failed to start feed worker: %v", err)
		}
	}

	feedHandler := handler.NewFeedHandler(wsHub, wsLogger)

	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		EmbeddingController: controller.NewEmbeddingController(embeddingSyncService),
		MessageController:   controller.NewMessageController(messageService),
		ChannelController:   controller.NewChannelController(channelService),

		ConsumerService:      consumerService,
		EmbeddingSyncService: embeddingSyncService,

		FeedHandler:  feedHandler,
		WebSocketHub: wsHub,

		Logger: sysLogger,
	}
}
