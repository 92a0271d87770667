package contract

import (
	"context"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"
)

type DirectMessageRepository interface {
	Create(ctx context.Context, turn *entity.DirectMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DirectMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
