package mapper

import (
	"chattyg-be/internal/entity"
	"chattyg-be/internal/model"

	"gorm.io/datatypes"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToModel(e *entity.Message) *model.Message {
	return &model.Message{
		Id:          e.Id,
		ChannelId:   e.ChannelId,
		UserId:      e.UserId,
		Content:     e.Content,
		Attachments: datatypes.JSON(e.Attachments),
		CreatedAt:   e.CreatedAt,
	}
}

func (m *MessageMapper) ToEntity(mo *model.Message) *entity.Message {
	return &entity.Message{
		Id:          mo.Id,
		ChannelId:   mo.ChannelId,
		UserId:      mo.UserId,
		Content:     mo.Content,
		Attachments: []byte(mo.Attachments),
		CreatedAt:   mo.CreatedAt,
	}
}
