package implementation

import (
	"context"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/mapper"
	"chattyg-be/internal/model"
	"chattyg-be/internal/repository/contract"
	"chattyg-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DirectMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DirectMessageMapper
}

func NewDirectMessageRepository(db *gorm.DB) contract.DirectMessageRepository {
	return &DirectMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewDirectMessageMapper(),
	}
}

func (r *DirectMessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DirectMessageRepositoryImpl) Create(ctx context.Context, turn *entity.DirectMessage) error {
	m := r.mapper.ToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.ToEntity(m)
	return nil
}

func (r *DirectMessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DirectMessage, error) {
	var models []*model.DirectMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.DirectMessage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *DirectMessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.DirectMessage{}).Count(&count).Error
	return count, err
}
