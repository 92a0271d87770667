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
	"chattyg-be/pkg/events"
	pkgNats "chattyg-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMessageRequest) (*dto.CreateMessageResponse, error)
	ListByChannel(ctx context.Context, channelId uuid.UUID, limit int, offset int) ([]*dto.ShowMessageResponse, error)
}

type messageService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
}

func NewMessageService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
) IMessageService {
	return &messageService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *messageService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMessageRequest) (*dto.CreateMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	channel, err := uow.ChannelRepository().FindOne(ctx, specification.ByID{ID: req.ChannelId})
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "channel not found")
	}

	msg := entity.Message{
		Id:          uuid.New(),
		ChannelId:   req.ChannelId,
		UserId:      userId,
		Content:     req.Content,
		Attachments: req.Attachments,
		CreatedAt:   time.Now(),
	}

	if err := uow.MessageRepository().Create(ctx, &msg); err != nil {
		return nil, err
	}

	// Queue the embed job so the message becomes searchable
	jobPayload := dto.PublishEmbedMessage{MessageId: msg.Id}
	jobJson, err := json.Marshal(jobPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, jobJson); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "message.created",
			Data: map[string]interface{}{
				"message_id": msg.Id,
				"channel_id": msg.ChannelId,
				"user_id":    userId,
			},
			OccurredAt: time.Now(),
		}
		// Feed fan-out is auxiliary, the message is already stored
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish message.created event: %v", err)
		}
	}

	return &dto.CreateMessageResponse{Id: msg.Id}, nil
}

func (s *messageService) ListByChannel(ctx context.Context, channelId uuid.UUID, limit int, offset int) ([]*dto.ShowMessageResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByChannelID{ChannelID: channelId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowMessageResponse, len(messages))
	for i, m := range messages {
		res[i] = &dto.ShowMessageResponse{
			Id:          m.Id,
			ChannelId:   m.ChannelId,
			UserId:      m.UserId,
			Content:     m.Content,
			Attachments: m.Attachments,
			CreatedAt:   m.CreatedAt,
		}
	}

	return res, nil
}
