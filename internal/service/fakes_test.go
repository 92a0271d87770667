package service

import (
	"context"
	"errors"

	"chattyg-be/internal/entity"
	"chattyg-be/internal/repository/contract"
	"chattyg-be/internal/repository/specification"
	"chattyg-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory stand-ins for the persistence layer. They implement just enough
// of the repository contracts for the pipeline services under test.

type fakeMessageRepo struct {
	messages   []*entity.Message
	backlog    []*entity.Message
	backlogErr error
	findOneErr error
	embeddings *fakeEmbeddingRepo
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	if r.findOneErr != nil {
		return nil, r.findOneErr
	}
	if len(r.messages) == 0 {
		return nil, nil
	}
	return r.messages[0], nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	return r.messages, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), nil
}

// FindWithoutEmbeddings mirrors the left anti-join in the real repository,
// so a message drops out of the backlog once its embedding lands.
func (r *fakeMessageRepo) FindWithoutEmbeddings(ctx context.Context, limit int) ([]*entity.Message, error) {
	if r.backlogErr != nil {
		return nil, r.backlogErr
	}
	var pending []*entity.Message
	for _, m := range r.backlog {
		if r.embeddings != nil && r.embeddings.hasFor(m.Id) {
			continue
		}
		pending = append(pending, m)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

type fakeEmbeddingRepo struct {
	upserts   []*entity.Embedding
	upsertErr error
	results   []*contract.ScoredMessage
	searchErr error
}

// Upsert replaces the existing record for the same message, matching the
// on-conflict clause of the real repository.
func (r *fakeEmbeddingRepo) Upsert(ctx context.Context, e *entity.Embedding) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	for i, existing := range r.upserts {
		if existing.MessageId == e.MessageId {
			r.upserts[i] = e
			return nil
		}
	}
	r.upserts = append(r.upserts, e)
	return nil
}

func (r *fakeEmbeddingRepo) hasFor(messageId uuid.UUID) bool {
	for _, e := range r.upserts {
		if e.MessageId == messageId {
			return true
		}
	}
	return false
}

func (r *fakeEmbeddingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Embedding, error) {
	return nil, nil
}

func (r *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.upserts)), nil
}

func (r *fakeEmbeddingRepo) SearchSimilarWithScore(ctx context.Context, vector []float32, limit int, threshold float64, channelIds []uuid.UUID) ([]*contract.ScoredMessage, error) {
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	if limit < len(r.results) {
		return r.results[:limit], nil
	}
	return r.results, nil
}

type fakeDirectMessageRepo struct {
	turns     []*entity.DirectMessage
	createErr error
	failAfter int // fail Create once this many turns exist, 0 = never
}

func (r *fakeDirectMessageRepo) Create(ctx context.Context, turn *entity.DirectMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.failAfter > 0 && len(r.turns) >= r.failAfter {
		return errors.New("disk full")
	}
	r.turns = append(r.turns, turn)
	return nil
}

func (r *fakeDirectMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DirectMessage, error) {
	return r.turns, nil
}

func (r *fakeDirectMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.turns)), nil
}

type fakeChannelRepo struct {
	channels []*entity.Channel
}

func (r *fakeChannelRepo) Create(ctx context.Context, c *entity.Channel) error {
	r.channels = append(r.channels, c)
	return nil
}

func (r *fakeChannelRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Channel, error) {
	if len(r.channels) == 0 {
		return nil, nil
	}
	return r.channels[0], nil
}

func (r *fakeChannelRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Channel, error) {
	return r.channels, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	messageRepo   *fakeMessageRepo
	embeddingRepo *fakeEmbeddingRepo
	dmRepo        *fakeDirectMessageRepo
	channelRepo   *fakeChannelRepo
	userRepo      *fakeUserRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	embeddingRepo := &fakeEmbeddingRepo{}
	return &fakeUnitOfWork{
		messageRepo:   &fakeMessageRepo{embeddings: embeddingRepo},
		embeddingRepo: embeddingRepo,
		dmRepo:        &fakeDirectMessageRepo{},
		channelRepo:   &fakeChannelRepo{},
		userRepo:      &fakeUserRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository       { return u.userRepo }
func (u *fakeUnitOfWork) ChannelRepository() contract.ChannelRepository { return u.channelRepo }
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository { return u.messageRepo }
func (u *fakeUnitOfWork) EmbeddingRepository() contract.EmbeddingRepository {
	return u.embeddingRepo
}
func (u *fakeUnitOfWork) DirectMessageRepository() contract.DirectMessageRepository {
	return u.dmRepo
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeEmbedder returns a fixed-size vector, optionally failing on chosen texts.
type fakeEmbedder struct {
	failOn map[string]error
	calls  []string
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string) ([]float32, error) {
	f.calls = append(f.calls, text)
	if err, ok := f.failOn[text]; ok {
		return nil, err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}
