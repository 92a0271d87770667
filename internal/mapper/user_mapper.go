package mapper

import (
	"chattyg-be/internal/entity"
	"chattyg-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	return &model.User{
		Id:        e.Id,
		Username:  e.Username,
		AvatarUrl: e.AvatarUrl,
		CreatedAt: e.CreatedAt,
	}
}

func (m *UserMapper) ToEntity(mo *model.User) *entity.User {
	return &entity.User{
		Id:        mo.Id,
		Username:  mo.Username,
		AvatarUrl: mo.AvatarUrl,
		CreatedAt: mo.CreatedAt,
	}
}
