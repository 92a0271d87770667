package contract

import (
	"context"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"
)

type ChannelRepository interface {
	Create(ctx context.Context, channel *entity.Channel) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Channel, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Channel, error)
}
