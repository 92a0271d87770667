package mapper

import (
	"chattyg-be/internal/entity"
	"chattyg-be/internal/model"
)

type ChannelMapper struct{}

func NewChannelMapper() *ChannelMapper {
	return &ChannelMapper{}
}

func (m *ChannelMapper) ToModel(e *entity.Channel) *model.Channel {
	return &model.Channel{
		Id:        e.Id,
		Name:      e.Name,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChannelMapper) ToEntity(mo *model.Channel) *entity.Channel {
	return &entity.Channel{
		Id:        mo.Id,
		Name:      mo.Name,
		CreatedBy: mo.CreatedBy,
		CreatedAt: mo.CreatedAt,
	}
}
