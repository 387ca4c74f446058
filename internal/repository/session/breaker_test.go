package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/onja-org/w2-scss-lab/internal/models"
	"github.com/onja-org/w2-scss-lab/internal/repository/session"
)

var breakerCfg = session.BreakerConfig{
	TimeInterval: 30 * time.Second,
	TimeTimeOut:  15 * time.Second,
	RepeatNumber: 3,
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, id string, state models.WidgetState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *mockStore) Load(ctx context.Context, id string) (models.WidgetState, error) {
	args := m.Called(ctx, id)
	state, ok := args.Get(0).(models.WidgetState)
	if !ok {
		return models.WidgetState{}, args.Error(1)
	}
	return state, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBreakerStore_Success(t *testing.T) {
	wrapped := new(mockStore)
	expected := models.WidgetState{QueryText: "to"}
	wrapped.On("Load", mock.Anything, "abc").Return(expected, nil).Once()

	bs := session.NewBreakerStore("redis", breakerCfg, wrapped)

	got, err := bs.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	wrapped.AssertExpectations(t)
}

func TestBreakerStore_NotFoundDoesNotTrip(t *testing.T) {
	wrapped := new(mockStore)
	wrapped.On("Load", mock.Anything, "missing").
		Return(models.WidgetState{}, session.ErrSessionNotFound).
		Times(5)

	bs := session.NewBreakerStore("redis", breakerCfg, wrapped)

	for i := 0; i < 5; i++ {
		_, err := bs.Load(context.Background(), "missing")
		require.ErrorIs(t, err, session.ErrSessionNotFound)
	}

	wrapped.AssertNumberOfCalls(t, "Load", 5)
}

func TestBreakerStore_TripsAfterConsecutiveFailures(t *testing.T) {
	wrapped := new(mockStore)
	underlyingErr := errors.New("connection refused")
	wrapped.On("Save", mock.Anything, "abc", mock.Anything).Return(underlyingErr).Times(3)

	bs := session.NewBreakerStore("redis", breakerCfg, wrapped)

	for i := 0; i < 3; i++ {
		err := bs.Save(context.Background(), "abc", models.WidgetState{})
		require.ErrorIs(t, err, underlyingErr)
		assert.Contains(t, err.Error(), "redis unavailable: connection refused")
	}

	err := bs.Save(context.Background(), "abc", models.WidgetState{})
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)

	wrapped.AssertNumberOfCalls(t, "Save", 3)
}

func TestBreakerStore_Delete(t *testing.T) {
	wrapped := new(mockStore)
	wrapped.On("Delete", mock.Anything, "abc").Return(nil).Once()

	bs := session.NewBreakerStore("redis", breakerCfg, wrapped)

	require.NoError(t, bs.Delete(context.Background(), "abc"))
	wrapped.AssertExpectations(t)
}
