package unitofwork

import (
	"context"

	"chattyg-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChannelRepository() contract.ChannelRepository
	MessageRepository() contract.MessageRepository
	EmbeddingRepository() contract.EmbeddingRepository
	DirectMessageRepository() contract.DirectMessageRepository
}
