package implementation

import (
	"context"
	"errors"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/mapper"
	"chattyg-be/internal/model"
	"chattyg-be/internal/repository/contract"
	"chattyg-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmbeddingMapper
}

func NewEmbeddingRepository(db *gorm.DB) contract.EmbeddingRepository {
	return &EmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmbeddingMapper(),
	}
}

func (r *EmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert inserts the embedding or, if a row for the same message_id already
// exists (racing writer, repeated backfill), overwrites its vector in place.
// At most one row per message can ever exist.
func (r *EmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.Embedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding_value", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *EmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Embedding, error) {
	var m model.Embedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Embedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore computes cosine similarity against every stored
// vector. pgvector's <=> operator is cosine distance, so similarity is
// 1 - distance. Ties on similarity break by newest message first, which keeps
// retrieval deterministic.
func (r *EmbeddingRepositoryImpl) SearchSimilarWithScore(
	ctx context.Context,
	vector []float32,
	limit int,
	threshold float64,
	channelIds []uuid.UUID,
) ([]*contract.ScoredMessage, error) {
	if limit <= 0 {
		limit = 5
	}

	queryVector := pgvector.NewVector(vector)

	var rows []*contract.ScoredMessage
	query := r.db.WithContext(ctx).
		Table("embeddings").
		Select("messages.id as message_id, messages.channel_id, messages.content, messages.created_at, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN messages ON messages.id = embeddings.message_id").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold)

	if len(channelIds) > 0 {
		query = query.Where("messages.channel_id IN ?", channelIds)
	}

	err := query.
		Order("similarity DESC, messages.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
