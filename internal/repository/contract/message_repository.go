package contract

import (
	"context"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindWithoutEmbeddings returns messages that have no embedding row yet,
	// oldest first, capped at limit. This is the synchronizer's backlog scan.
	FindWithoutEmbeddings(ctx context.Context, limit int) ([]*entity.Message, error)
}
