package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chattyg-be/internal/entity"
	"chattyg-be/pkg/aierr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func backlogMessage(content string) *entity.Message {
	return &entity.Message{
		Id:        uuid.New(),
		ChannelId: uuid.New(),
		UserId:    uuid.New(),
		Content:   content,
		CreatedAt: time.Now(),
	}
}

func TestSyncBatchEmbedsBacklog(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.messageRepo.backlog = []*entity.Message{
		backlogMessage("one"),
		backlogMessage("two"),
		backlogMessage("three"),
	}
	embedder := &fakeEmbedder{}

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, embedder, 10)

	res, err := svc.SyncBatch(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Examined)
	assert.Equal(t, 3, res.Embedded)
	assert.Len(t, uow.embeddingRepo.upserts, 3)

	// Each embedding points at its source message
	for i, up := range uow.embeddingRepo.upserts {
		assert.Equal(t, uow.messageRepo.backlog[i].Id, up.MessageId)
	}
}

func TestSyncBatchSkipsFailedMessages(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.messageRepo.backlog = []*entity.Message{
		backlogMessage("ok-1"),
		backlogMessage("poison"),
		backlogMessage("ok-2"),
	}
	embedder := &fakeEmbedder{
		failOn: map[string]error{"poison": errors.New("model choked")},
	}

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, embedder, 10)

	res, err := svc.SyncBatch(context.Background(), 0)
	assert.NoError(t, err, "one bad message must not fail the batch")
	assert.Equal(t, 3, res.Examined)
	assert.Equal(t, 2, res.Embedded)
	assert.Len(t, uow.embeddingRepo.upserts, 2)
}

func TestSyncBatchRunTwiceKeepsOneEmbeddingPerMessage(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.messageRepo.backlog = []*entity.Message{
		backlogMessage("one"),
		backlogMessage("two"),
		backlogMessage("three"),
	}
	embedder := &fakeEmbedder{}

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, embedder, 10)

	first, err := svc.SyncBatch(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, first.Embedded)

	second, err := svc.SyncBatch(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Examined, "embedded messages must leave the backlog")

	// The record set is unchanged and no message carries two embeddings
	assert.Len(t, uow.embeddingRepo.upserts, 3)
	seen := map[uuid.UUID]bool{}
	for _, up := range uow.embeddingRepo.upserts {
		assert.False(t, seen[up.MessageId], "duplicate embedding for message %s", up.MessageId)
		seen[up.MessageId] = true
	}
}

func TestGenerateForMessageReplacesExistingEmbedding(t *testing.T) {
	uow := newFakeUnitOfWork()
	msg := backlogMessage("hello")
	uow.messageRepo.messages = []*entity.Message{msg}

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, &fakeEmbedder{}, 10)

	assert.NoError(t, svc.GenerateForMessage(context.Background(), msg.Id))
	assert.NoError(t, svc.GenerateForMessage(context.Background(), msg.Id))

	assert.Len(t, uow.embeddingRepo.upserts, 1, "re-embedding must overwrite, not duplicate")
	assert.Equal(t, msg.Id, uow.embeddingRepo.upserts[0].MessageId)
}

func TestSyncBatchRespectsLimit(t *testing.T) {
	uow := newFakeUnitOfWork()
	for i := 0; i < 5; i++ {
		uow.messageRepo.backlog = append(uow.messageRepo.backlog, backlogMessage("msg"))
	}
	embedder := &fakeEmbedder{}

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, embedder, 10)

	res, err := svc.SyncBatch(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Examined)
	assert.Equal(t, 2, res.Embedded)
}

func TestSyncBatchEmptyBacklog(t *testing.T) {
	uow := newFakeUnitOfWork()
	embedder := &fakeEmbedder{}

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, embedder, 10)

	res, err := svc.SyncBatch(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Examined)
	assert.Empty(t, embedder.calls)
}

func TestSyncBatchBacklogScanFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.messageRepo.backlogErr = errors.New("connection refused")

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, &fakeEmbedder{}, 10)

	_, err := svc.SyncBatch(context.Background(), 0)
	assert.True(t, aierr.Is(err, aierr.KindStoreUnavailable), "got %v", err)
}

func TestGenerateForMessageNotFound(t *testing.T) {
	uow := newFakeUnitOfWork()

	svc := NewEmbeddingSyncService(&fakeUowFactory{uow: uow}, &fakeEmbedder{}, 10)

	err := svc.GenerateForMessage(context.Background(), uuid.New())
	assert.True(t, aierr.Is(err, aierr.KindPersistenceFailed), "got %v", err)
}
