package service

import (
	"context"
	"log"
	"time"

	"chattyg-be/internal/dto"
	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"
	"chattyg-be/internal/repository/unitofwork"
	"chattyg-be/pkg/aierr"
	"chattyg-be/pkg/embedding"

	"github.com/google/uuid"
)

type IEmbeddingSyncService interface {
	// SyncBatch embeds one batch of messages that have no embedding yet.
	// A message whose embedding fails is logged and skipped so the rest of
	// the batch still lands; it will be retried on a later pass.
	SyncBatch(ctx context.Context, limit int) (*dto.SyncEmbeddingsResponse, error)

	// GenerateForMessage embeds a single message on demand.
	GenerateForMessage(ctx context.Context, messageId uuid.UUID) error

	// RunPeriodic drives SyncBatch on a fixed interval until ctx is done.
	RunPeriodic(ctx context.Context, interval time.Duration, batchSize int)
}

type embeddingSyncService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	defaultBatchSize  int
}

func NewEmbeddingSyncService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	defaultBatchSize int,
) IEmbeddingSyncService {
	return &embeddingSyncService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		defaultBatchSize:  defaultBatchSize,
	}
}

func (s *embeddingSyncService) SyncBatch(ctx context.Context, limit int) (*dto.SyncEmbeddingsResponse, error) {
	if limit <= 0 {
		limit = s.defaultBatchSize
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	backlog, err := uow.MessageRepository().FindWithoutEmbeddings(ctx, limit)
	if err != nil {
		return nil, aierr.Wrap(aierr.KindStoreUnavailable, "backlog scan failed", err)
	}

	if len(backlog) == 0 {
		return &dto.SyncEmbeddingsResponse{}, nil
	}

	log.Printf("[INFO] Backfilling embeddings for %d messages", len(backlog))

	embedded := 0
	for _, msg := range backlog {
		if err := s.embedAndStore(ctx, uow, msg); err != nil {
			log.Printf("[WARN] Skipping message %s: %v", msg.Id, err)
			continue
		}
		embedded++
	}

	return &dto.SyncEmbeddingsResponse{
		Examined: len(backlog),
		Embedded: embedded,
	}, nil
}

func (s *embeddingSyncService) GenerateForMessage(ctx context.Context, messageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil {
		return aierr.Wrap(aierr.KindStoreUnavailable, "message lookup failed", err)
	}
	if msg == nil {
		return aierr.New(aierr.KindPersistenceFailed, "message not found")
	}

	return s.embedAndStore(ctx, uow, msg)
}

func (s *embeddingSyncService) embedAndStore(ctx context.Context, uow unitofwork.UnitOfWork, msg *entity.Message) error {
	vector, err := s.embeddingProvider.Generate(ctx, msg.Content)
	if err != nil {
		return err
	}

	now := time.Now()
	err = uow.EmbeddingRepository().Upsert(ctx, &entity.Embedding{
		Id:             uuid.New(),
		MessageId:      msg.Id,
		EmbeddingValue: vector,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return aierr.Wrap(aierr.KindStoreUnavailable, "embedding upsert failed", err)
	}

	return nil
}

func (s *embeddingSyncService) RunPeriodic(ctx context.Context, interval time.Duration, batchSize int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("[INFO] Embedding backfill worker started (every %s, batch %d)", interval, batchSize)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] Embedding backfill worker stopped")
			return
		case <-ticker.C:
			res, err := s.SyncBatch(ctx, batchSize)
			if err != nil {
				log.Printf("[ERROR] Backfill pass failed: %v", err)
				continue
			}
			if res.Examined > 0 {
				log.Printf("[INFO] Backfill pass: %d examined, %d embedded", res.Examined, res.Embedded)
			}
		}
	}
}
