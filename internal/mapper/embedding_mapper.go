package mapper

import (
	"chattyg-be/internal/entity"
	"chattyg-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type EmbeddingMapper struct{}

func NewEmbeddingMapper() *EmbeddingMapper {
	return &EmbeddingMapper{}
}

func (m *EmbeddingMapper) ToModel(e *entity.Embedding) *model.Embedding {
	return &model.Embedding{
		Id:             e.Id,
		MessageId:      e.MessageId,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EmbeddingMapper) ToEntity(mo *model.Embedding) *entity.Embedding {
	return &entity.Embedding{
		Id:             mo.Id,
		MessageId:      mo.MessageId,
		EmbeddingValue: mo.EmbeddingValue.Slice(),
		CreatedAt:      mo.CreatedAt,
		UpdatedAt:      mo.UpdatedAt,
	}
}
