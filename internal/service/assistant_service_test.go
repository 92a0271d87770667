package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"chattyg-be/internal/config"
	"chattyg-be/internal/constant"
	"chattyg-be/internal/dto"
	"chattyg-be/internal/repository/contract"
	"chattyg-be/internal/repository/memory"
	"chattyg-be/pkg/aierr"
	"chattyg-be/pkg/llm"
	"chattyg-be/pkg/rag/response"
	"chattyg-be/pkg/rag/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testAssistantID = "a7756e85-e983-464e-843b-f74e3e34decd"

type scriptedLLM struct {
	reply   string
	err     error
	history []llm.Message
}

func (f *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.history = history
	return f.reply, f.err
}

func (f *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func testAssistantConfig() config.AssistantConfig {
	return config.AssistantConfig{
		UserID:              testAssistantID,
		SimilarityThreshold: 0.25,
		TopK:                5,
		SyncBatchSize:       10,
		SyncInterval:        time.Minute,
		QueryTimeout:        5 * time.Second,
	}
}

func newTestAssistant(uow *fakeUnitOfWork, embedder *fakeEmbedder, chat *scriptedLLM) IAssistantService {
	quiet := log.New(io.Discard, "", 0)
	return NewAssistantService(
		&fakeUowFactory{uow: uow},
		embedder,
		memory.NewEmbeddingCache(),
		search.NewRetriever(quiet),
		response.NewGenerator(chat, quiet),
		nil,
		testAssistantConfig(),
	)
}

func TestAskAnswersFromRetrievedContext(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.embeddingRepo.results = []*contract.ScoredMessage{
		{MessageId: uuid.New(), Content: "deploy moved to friday", Similarity: 0.88, CreatedAt: time.Now()},
		{MessageId: uuid.New(), Content: "irrelevant chatter", Similarity: 0.10, CreatedAt: time.Now()},
	}
	chat := &scriptedLLM{reply: "The deploy is on Friday!"}
	userId := uuid.New()

	svc := newTestAssistant(uow, &fakeEmbedder{}, chat)

	res, err := svc.Ask(context.Background(), userId, &dto.AskAssistantRequest{Question: "when is the deploy?"})
	assert.NoError(t, err)
	assert.Equal(t, "The deploy is on Friday!", res.Answer)

	// The strong match reached the model, the weak one was filtered out
	system := chat.history[0].Content
	assert.Contains(t, system, "deploy moved to friday")
	assert.NotContains(t, system, "irrelevant chatter")
}

func TestAskPersistsBothTurns(t *testing.T) {
	uow := newFakeUnitOfWork()
	chat := &scriptedLLM{reply: "hi there!"}
	userId := uuid.New()

	svc := newTestAssistant(uow, &fakeEmbedder{}, chat)

	_, err := svc.Ask(context.Background(), userId, &dto.AskAssistantRequest{Question: "hello"})
	assert.NoError(t, err)

	turns := uow.dmRepo.turns
	assert.Len(t, turns, 2)

	question := turns[0]
	assert.Equal(t, userId, question.SenderId)
	assert.Equal(t, testAssistantID, question.RecipientId.String())
	assert.Equal(t, "hello", question.Content)

	answer := turns[1]
	assert.Equal(t, testAssistantID, answer.SenderId.String())
	assert.Equal(t, userId, answer.RecipientId)
	assert.Equal(t, "hi there!", answer.Content)
}

func TestAskWritesApologyOnGenerationFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	chat := &scriptedLLM{err: errors.New("model exploded")}
	userId := uuid.New()

	svc := newTestAssistant(uow, &fakeEmbedder{}, chat)

	_, err := svc.Ask(context.Background(), userId, &dto.AskAssistantRequest{Question: "hello"})
	assert.True(t, aierr.Is(err, aierr.KindGenerationFailed), "got %v", err)

	// The question turn landed before the failure and the apology after it
	turns := uow.dmRepo.turns
	assert.Len(t, turns, 2)
	assert.Equal(t, "hello", turns[0].Content)
	assert.Equal(t, constant.AssistantApologyReply, turns[1].Content)
	assert.Equal(t, testAssistantID, turns[1].SenderId.String())
}

func TestAskPropagatesStoreFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.embeddingRepo.searchErr = errors.New("pg down")
	chat := &scriptedLLM{reply: "unreachable"}

	svc := newTestAssistant(uow, &fakeEmbedder{}, chat)

	_, err := svc.Ask(context.Background(), uuid.New(), &dto.AskAssistantRequest{Question: "q"})
	assert.True(t, aierr.Is(err, aierr.KindStoreUnavailable), "got %v", err)
	assert.Empty(t, chat.history, "the model must not be called when retrieval fails")
}

func TestAskFailsWhenQuestionTurnCannotPersist(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.dmRepo.createErr = errors.New("disk full")
	chat := &scriptedLLM{reply: "unreachable"}
	embedder := &fakeEmbedder{}

	svc := newTestAssistant(uow, embedder, chat)

	_, err := svc.Ask(context.Background(), uuid.New(), &dto.AskAssistantRequest{Question: "q"})
	assert.True(t, aierr.Is(err, aierr.KindPersistenceFailed), "got %v", err)
	assert.Empty(t, embedder.calls, "pipeline must not start when the question turn fails")
}

func TestAskReusesCachedQuestionVector(t *testing.T) {
	uow := newFakeUnitOfWork()
	chat := &scriptedLLM{reply: "answer"}
	embedder := &fakeEmbedder{}

	svc := newTestAssistant(uow, embedder, chat)

	req := &dto.AskAssistantRequest{Question: "same question"}
	_, err := svc.Ask(context.Background(), uuid.New(), req)
	assert.NoError(t, err)
	_, err = svc.Ask(context.Background(), uuid.New(), req)
	assert.NoError(t, err)

	assert.Len(t, embedder.calls, 1, "second ask should hit the vector cache")
}

func TestShowConversationMapsTurns(t *testing.T) {
	uow := newFakeUnitOfWork()
	chat := &scriptedLLM{reply: "42"}
	userId := uuid.New()

	svc := newTestAssistant(uow, &fakeEmbedder{}, chat)

	_, err := svc.Ask(context.Background(), userId, &dto.AskAssistantRequest{Question: "meaning of life?"})
	assert.NoError(t, err)

	res, err := svc.ShowConversation(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, res.Turns, 2)
	assert.Equal(t, "meaning of life?", res.Turns[0].Content)
	assert.Equal(t, "42", res.Turns[1].Content)

	// Make sure the empty-context path still says something sensible
	assert.True(t, strings.HasPrefix(chat.history[0].Content, constant.AssistantPersonaPrompt))
}
