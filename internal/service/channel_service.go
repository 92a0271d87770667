package service

import (
	"context"
	"time"

	"chattyg-be/internal/dto"
	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/specification"
	"chattyg-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChannelService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateChannelRequest) (*dto.CreateChannelResponse, error)
	List(ctx context.Context) ([]*dto.ShowChannelResponse, error)
}

type channelService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChannelService(uowFactory unitofwork.RepositoryFactory) IChannelService {
	return &channelService{
		uowFactory: uowFactory,
	}
}

func (s *channelService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateChannelRequest) (*dto.CreateChannelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	channel := entity.Channel{
		Id:        uuid.New(),
		Name:      req.Name,
		CreatedBy: userId,
		CreatedAt: time.Now(),
	}

	if err := uow.ChannelRepository().Create(ctx, &channel); err != nil {
		return nil, err
	}

	return &dto.CreateChannelResponse{Id: channel.Id}, nil
}

func (s *channelService) List(ctx context.Context) ([]*dto.ShowChannelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	channels, err := uow.ChannelRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowChannelResponse, len(channels))
	for i, c := range channels {
		res[i] = &dto.ShowChannelResponse{
			Id:        c.Id,
			Name:      c.Name,
			CreatedBy: c.CreatedBy,
			CreatedAt: c.CreatedAt,
		}
	}

	return res, nil
}
