package mapper

import (
	"chattyg-be/internal/entity"
	"chattyg-be/internal/model"
)

type DirectMessageMapper struct{}

func NewDirectMessageMapper() *DirectMessageMapper {
	return &DirectMessageMapper{}
}

func (m *DirectMessageMapper) ToModel(e *entity.DirectMessage) *model.DirectMessage {
	return &model.DirectMessage{
		Id:          e.Id,
		SenderId:    e.SenderId,
		RecipientId: e.RecipientId,
		Content:     e.Content,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *DirectMessageMapper) ToEntity(mo *model.DirectMessage) *entity.DirectMessage {
	return &entity.DirectMessage{
		Id:          mo.Id,
		SenderId:    mo.SenderId,
		RecipientId: mo.RecipientId,
		Content:     mo.Content,
		CreatedAt:   mo.CreatedAt,
	}
}
