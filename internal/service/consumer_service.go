package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"chattyg-be/internal/dto"
	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"
	"chattyg-be/internal/repository/unitofwork"
	"chattyg-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// The gochannel subscriber redelivers a nacked message immediately, so a
// persistently failing job would spin hot without a pause before the Nack.
const defaultNackDelay = time.Second

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	nackDelay         time.Duration
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		nackDelay:         defaultNackDelay,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for MessageId: %s", payload.MessageId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatMessage, err := uow.MessageRepository().FindOne(ctx, specification.ByID{ID: payload.MessageId})
	if err != nil {
		log.Printf("[ERROR] Failed to get message %s: %v", payload.MessageId, err)
		cs.nack(msg) // Nack for retriable errors
		return
	}
	if chatMessage == nil {
		log.Printf("[ERROR] Message not found: %s", payload.MessageId)
		msg.Ack() // Message deleted? Ack.
		return
	}

	vector, err := cs.embeddingProvider.Generate(ctx, chatMessage.Content)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for message %s: %v", payload.MessageId, err)
		cs.nack(msg)
		return
	}

	now := time.Now()
	err = uow.EmbeddingRepository().Upsert(ctx, &entity.Embedding{
		Id:             uuid.New(),
		MessageId:      chatMessage.Id,
		EmbeddingValue: vector,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to upsert embedding for message %s: %v", payload.MessageId, err)
		cs.nack(msg)
		return
	}

	log.Printf("[SUCCESS] Embedding stored for MessageId: %s", payload.MessageId)
	msg.Ack()
}

func (cs *consumerService) nack(msg *message.Message) {
	time.Sleep(cs.nackDelay)
	msg.Nack()
}
