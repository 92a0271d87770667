package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"chattyg-be/internal/dto"
	"chattyg-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestConsumer(uow *fakeUnitOfWork, embedder *fakeEmbedder, nackDelay time.Duration) *consumerService {
	return &consumerService{
		uowFactory:        &fakeUowFactory{uow: uow},
		embeddingProvider: embedder,
		nackDelay:         nackDelay,
	}
}

func embedJob(t *testing.T, messageId uuid.UUID) *message.Message {
	t.Helper()
	payload, err := json.Marshal(dto.PublishEmbedMessage{MessageId: messageId})
	assert.NoError(t, err)
	return message.NewMessage(watermill.NewUUID(), payload)
}

func assertAcked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Acked():
	case <-msg.Nacked():
		t.Fatal("message was nacked, want ack")
	case <-time.After(time.Second):
		t.Fatal("message was never acked")
	}
}

func assertNacked(t *testing.T, msg *message.Message) {
	t.Helper()
	select {
	case <-msg.Nacked():
	case <-msg.Acked():
		t.Fatal("message was acked, want nack")
	case <-time.After(time.Second):
		t.Fatal("message was never nacked")
	}
}

func TestProcessMessageStoresEmbedding(t *testing.T) {
	uow := newFakeUnitOfWork()
	chatMessage := backlogMessage("hello world")
	uow.messageRepo.messages = []*entity.Message{chatMessage}

	cs := newTestConsumer(uow, &fakeEmbedder{}, 0)
	msg := embedJob(t, chatMessage.Id)

	cs.processMessage(context.Background(), msg)

	assertAcked(t, msg)
	assert.Len(t, uow.embeddingRepo.upserts, 1)
	assert.Equal(t, chatMessage.Id, uow.embeddingRepo.upserts[0].MessageId)
}

func TestProcessMessageAcksMalformedPayload(t *testing.T) {
	uow := newFakeUnitOfWork()
	embedder := &fakeEmbedder{}

	cs := newTestConsumer(uow, embedder, 0)
	msg := message.NewMessage(watermill.NewUUID(), []byte("{not json"))

	cs.processMessage(context.Background(), msg)

	assertAcked(t, msg)
	assert.Empty(t, embedder.calls)
}

func TestProcessMessageAcksDeletedMessage(t *testing.T) {
	uow := newFakeUnitOfWork()

	cs := newTestConsumer(uow, &fakeEmbedder{}, 0)
	msg := embedJob(t, uuid.New())

	cs.processMessage(context.Background(), msg)

	assertAcked(t, msg)
	assert.Empty(t, uow.embeddingRepo.upserts)
}

func TestProcessMessageDelaysRedeliveryOnFailure(t *testing.T) {
	uow := newFakeUnitOfWork()
	uow.messageRepo.findOneErr = errors.New("connection refused")

	delay := 50 * time.Millisecond
	cs := newTestConsumer(uow, &fakeEmbedder{}, delay)
	msg := embedJob(t, uuid.New())

	start := time.Now()
	cs.processMessage(context.Background(), msg)

	assertNacked(t, msg)
	assert.GreaterOrEqual(t, time.Since(start), delay, "failed jobs must pause before redelivery")
}
