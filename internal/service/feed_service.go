package service

import (
	"context"

	"chattyg-be/internal/websocket"
	"chattyg-be/pkg/events"
	pkgNats "chattyg-be/pkg/nats"
)

// IFeedService bridges chat events from the NATS bus to connected
// websocket feed clients.
type IFeedService interface {
	Start() error
}

type feedService struct {
	subscriber *pkgNats.Subscriber
	hub        *websocket.Hub
}

func NewFeedService(subscriber *pkgNats.Subscriber, hub *websocket.Hub) IFeedService {
	return &feedService{
		subscriber: subscriber,
		hub:        hub,
	}
}

func (s *feedService) Start() error {
	// Durable so feed delivery resumes where it stopped after a restart
	return s.subscriber.Subscribe("chat.>", "chat-feed-worker", s.handleEvent)
}

func (s *feedService) handleEvent(ctx context.Context, event events.Event) error {
	s.hub.Broadcast(websocket.FeedEvent{
		Type: event.EventType(),
		Data: event.Payload(),
	})
	return nil
}
