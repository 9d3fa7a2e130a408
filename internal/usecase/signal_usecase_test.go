package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/directory-microservice/internal/domain"
	"github.com/directory-microservice/internal/pkg/clock"
	"github.com/directory-microservice/internal/repository/memory"
	"github.com/directory-microservice/internal/usecase"
	"github.com/directory-microservice/internal/usecase/dto"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type signalFixture struct {
	clk        *clock.Fixed
	entityRepo *memory.EntityRepository
	signalRepo *memory.SignalRepository
	stream     *MockStreamRepository
	uc         *usecase.SignalUseCase
}

func newSignalFixture(t *testing.T) *signalFixture {
	t.Helper()

	clk := clock.NewFixed(testInstant)
	entityRepo := memory.NewEntityRepository(clk, zap.NewNop())
	signalRepo := memory.NewSignalRepository(clk)
	stream := &MockStreamRepository{}

	return &signalFixture{
		clk:        clk,
		entityRepo: entityRepo,
		signalRepo: signalRepo,
		stream:     stream,
		uc:         usecase.NewSignalUseCase(signalRepo, entityRepo, stream, zap.NewNop()),
	}
}

func TestSignalUseCase_Add_Confirm(t *testing.T) {
	f := newSignalFixture(t)
	ctx := context.Background()

	entity, err := f.entityRepo.Create(ctx, domain.Entity{Type: "cafe", Area: "a", Title: "X"})
	require.NoError(t, err)

	f.clk.Set(testInstant.Add(time.Hour))
	f.stream.On("PublishToStream", ctx, domain.StreamSignalsRecorded, mock.MatchedBy(func(event domain.SignalRecordedEvent) bool {
		return event.EntityID == entity.ID && event.EntityUpdated
	})).Return(nil)

	signal, err := f.uc.Add(ctx, dto.AddSignalRequest{EntityID: entity.ID, Type: domain.SignalTypeConfirm})
	require.NoError(t, err)
	assert.Equal(t, testInstant.Add(time.Hour), signal.CreatedAt)

	// The confirm side effect uses the signal's own timestamp.
	confirmed, err := f.entityRepo.GetByID(ctx, entity.ID)
	require.NoError(t, err)
	require.NotNil(t, confirmed.LastConfirmedAt)
	assert.Equal(t, signal.CreatedAt, *confirmed.LastConfirmedAt)
	assert.Equal(t, signal.CreatedAt, confirmed.UpdatedAt)

	f.stream.AssertExpectations(t)
}

func TestSignalUseCase_Add_NonConfirm(t *testing.T) {
	f := newSignalFixture(t)
	ctx := context.Background()

	entity, err := f.entityRepo.Create(ctx, domain.Entity{Type: "cafe", Area: "a", Title: "X"})
	require.NoError(t, err)

	f.stream.On("PublishToStream", ctx, domain.StreamSignalsRecorded, mock.Anything).Return(nil)

	_, err = f.uc.Add(ctx, dto.AddSignalRequest{EntityID: entity.ID, Type: "report"})
	require.NoError(t, err)

	got, err := f.entityRepo.GetByID(ctx, entity.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LastConfirmedAt, "non-confirm signals never touch last_confirmed_at")
	assert.Equal(t, testInstant, got.UpdatedAt, "non-confirm signals never bump updated_at")
}

func TestSignalUseCase_Add_UnknownEntity(t *testing.T) {
	f := newSignalFixture(t)
	ctx := context.Background()

	f.stream.On("PublishToStream", ctx, domain.StreamSignalsRecorded, mock.MatchedBy(func(event domain.SignalRecordedEvent) bool {
		return !event.EntityUpdated
	})).Return(nil)

	// Fire and forget: the entity does not exist, the signal is still
	// recorded and no error surfaces.
	signal, err := f.uc.Add(ctx, dto.AddSignalRequest{EntityID: "ghost", Type: domain.SignalTypeConfirm})
	require.NoError(t, err)
	assert.NotEmpty(t, signal.ID)

	ledger, err := f.signalRepo.ListByEntity(ctx, "ghost")
	require.NoError(t, err)
	assert.Len(t, ledger, 1)
}

func TestSignalUseCase_Add_PublishFailureIsSwallowed(t *testing.T) {
	f := newSignalFixture(t)
	ctx := context.Background()

	f.stream.On("PublishToStream", ctx, domain.StreamSignalsRecorded, mock.Anything).
		Return(errors.New("redis down"))

	signal, err := f.uc.Add(ctx, dto.AddSignalRequest{EntityID: "e1", Type: "report"})
	require.NoError(t, err, "stream failures never fail the core operation")
	assert.NotEmpty(t, signal.ID)
}

func TestSignalUseCase_Add_WithoutStream(t *testing.T) {
	f := newSignalFixture(t)
	uc := usecase.NewSignalUseCase(f.signalRepo, f.entityRepo, nil, zap.NewNop())

	signal, err := uc.Add(context.Background(), dto.AddSignalRequest{EntityID: "e1", Type: "report"})
	require.NoError(t, err)
	assert.NotEmpty(t, signal.ID)
}

func TestSignalUseCase_List(t *testing.T) {
	f := newSignalFixture(t)
	ctx := context.Background()

	f.stream.On("PublishToStream", ctx, domain.StreamSignalsRecorded, mock.Anything).Return(nil)

	_, err := f.uc.Add(ctx, dto.AddSignalRequest{EntityID: "e1", Type: "report"})
	require.NoError(t, err)
	_, err = f.uc.Add(ctx, dto.AddSignalRequest{EntityID: "e2", Type: "report"})
	require.NoError(t, err)

	t.Run("for one entity", func(t *testing.T) {
		result, err := f.uc.List(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("full ledger", func(t *testing.T) {
		result, err := f.uc.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})
}
