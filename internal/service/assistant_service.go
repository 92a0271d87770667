package service

import (
	"context"
	"log"
	"time"

	"chattyg-be/internal/config"
	"chattyg-be/internal/constant"
	"chattyg-be/internal/dto"
	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/memory"
	"chattyg-be/internal/repository/specification"
	"chattyg-be/internal/repository/unitofwork"
	"chattyg-be/pkg/aierr"
	"chattyg-be/pkg/embedding"
	"chattyg-be/pkg/events"
	pkgNats "chattyg-be/pkg/nats"
	"chattyg-be/pkg/rag/contextbuilder"
	"chattyg-be/pkg/rag/response"
	"chattyg-be/pkg/rag/search"

	"github.com/google/uuid"
)

type IAssistantService interface {
	// Ask runs the full question pipeline and returns the assistant's answer.
	// Both the question and the answer end up as turns in the user's DM
	// conversation with the assistant.
	Ask(ctx context.Context, userId uuid.UUID, req *dto.AskAssistantRequest) (*dto.AskAssistantResponse, error)

	// ShowConversation returns the user's DM history with the assistant,
	// oldest turn first.
	ShowConversation(ctx context.Context, userId uuid.UUID) (*dto.ShowConversationResponse, error)
}

type assistantService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	embeddingCache    *memory.EmbeddingCache
	retriever         *search.Retriever
	generator         *response.Generator
	eventPublisher    *pkgNats.Publisher
	assistantId       uuid.UUID
	cfg               config.AssistantConfig
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	embeddingCache *memory.EmbeddingCache,
	retriever *search.Retriever,
	generator *response.Generator,
	eventPublisher *pkgNats.Publisher,
	cfg config.AssistantConfig,
) IAssistantService {
	return &assistantService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		embeddingCache:    embeddingCache,
		retriever:         retriever,
		generator:         generator,
		eventPublisher:    eventPublisher,
		assistantId:       uuid.MustParse(cfg.UserID),
		cfg:               cfg,
	}
}

func (s *assistantService) Ask(ctx context.Context, userId uuid.UUID, req *dto.AskAssistantRequest) (*dto.AskAssistantResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The question turn lands before any model call so the conversation
	// reflects what the user asked even when the pipeline fails later.
	questionTurn := &entity.DirectMessage{
		Id:          uuid.New(),
		SenderId:    userId,
		RecipientId: s.assistantId,
		Content:     req.Question,
		CreatedAt:   time.Now(),
	}
	if err := uow.DirectMessageRepository().Create(ctx, questionTurn); err != nil {
		return nil, aierr.Wrap(aierr.KindPersistenceFailed, "question turn write failed", err)
	}

	answer, err := s.answer(ctx, uow, req)
	if err != nil {
		s.writeApologyTurn(ctx, uow, userId)
		return nil, err
	}

	answerTurn := &entity.DirectMessage{
		Id:          uuid.New(),
		SenderId:    s.assistantId,
		RecipientId: userId,
		Content:     answer,
		CreatedAt:   time.Now(),
	}
	if err := uow.DirectMessageRepository().Create(ctx, answerTurn); err != nil {
		return nil, aierr.Wrap(aierr.KindPersistenceFailed, "answer turn write failed", err)
	}

	s.publishAnswered(ctx, userId, answerTurn)

	return &dto.AskAssistantResponse{Answer: answer}, nil
}

// answer runs embed, retrieve, assemble, generate. Persistence stays in Ask.
func (s *assistantService) answer(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.AskAssistantRequest) (string, error) {
	vector, found := s.embeddingCache.Get(req.Question)
	if !found {
		var err error
		vector, err = s.embeddingProvider.Generate(ctx, req.Question)
		if err != nil {
			return "", err
		}
		s.embeddingCache.Save(req.Question, vector)
	}

	searchConfig := search.DefaultConfig()
	searchConfig.LogicThreshold = s.cfg.SimilarityThreshold
	searchConfig.TopK = s.cfg.TopK
	searchConfig.ChannelIds = req.ChannelIds

	matches, err := s.retriever.Execute(ctx, uow, vector, searchConfig)
	if err != nil {
		return "", err
	}

	contextBlock := contextbuilder.Assemble(matches)

	return s.generator.Respond(ctx, req.Question, contextBlock)
}

// writeApologyTurn keeps the conversation coherent after a pipeline failure.
// Best effort: the original error is what the caller sees either way.
func (s *assistantService) writeApologyTurn(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) {
	apology := &entity.DirectMessage{
		Id:          uuid.New(),
		SenderId:    s.assistantId,
		RecipientId: userId,
		Content:     constant.AssistantApologyReply,
		CreatedAt:   time.Now(),
	}
	if err := uow.DirectMessageRepository().Create(ctx, apology); err != nil {
		log.Printf("[WARN] Failed to write apology turn for user %s: %v", userId, err)
	}
}

func (s *assistantService) publishAnswered(ctx context.Context, userId uuid.UUID, turn *entity.DirectMessage) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: "assistant.answered",
		Data: map[string]interface{}{
			"turn_id": turn.Id,
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
	// Feed fan-out is auxiliary, the request already succeeded
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		log.Printf("[WARN] Failed to publish assistant.answered event: %v", err)
	}
}

func (s *assistantService) ShowConversation(ctx context.Context, userId uuid.UUID) (*dto.ShowConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	turns, err := uow.DirectMessageRepository().FindAll(ctx,
		specification.ConversationBetween{UserA: userId, UserB: s.assistantId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, aierr.Wrap(aierr.KindStoreUnavailable, "conversation lookup failed", err)
	}

	res := &dto.ShowConversationResponse{
		Turns: make([]dto.ConversationTurn, len(turns)),
	}
	for i, t := range turns {
		res.Turns[i] = dto.ConversationTurn{
			Id:          t.Id,
			SenderId:    t.SenderId,
			RecipientId: t.RecipientId,
			Content:     t.Content,
			CreatedAt:   t.CreatedAt,
		}
	}

	return res, nil
}
