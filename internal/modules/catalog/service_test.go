package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kivulounge/internal/domain"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockRoomCache struct {
	mock.Mock
}

func (m *MockRoomCache) GetRooms(ctx context.Context) ([]domain.Room, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.Room), args.Bool(1)
}

func (m *MockRoomCache) SetRooms(ctx context.Context, rooms []domain.Room) {
	m.Called(ctx, rooms)
}

func (m *MockRoomCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

func TestListRooms_CacheMissFillsCache(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockCache := new(MockRoomCache)

	rooms := []domain.Room{{ID: 1, Name: "Lake View Suite"}}

	mockCache.On("GetRooms", mock.Anything).Return(nil, false)
	mockRooms.On("List", mock.Anything).Return(rooms, nil)
	mockCache.On("SetRooms", mock.Anything, rooms).Return()

	service := NewService(mockRooms, mockCache)

	got, err := service.ListRooms(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, rooms, got)
	mockCache.AssertCalled(t, "SetRooms", mock.Anything, rooms)
}

func TestListRooms_CacheHitSkipsRepository(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockCache := new(MockRoomCache)

	rooms := []domain.Room{{ID: 1, Name: "Lake View Suite"}}
	mockCache.On("GetRooms", mock.Anything).Return(rooms, true)

	service := NewService(mockRooms, mockCache)

	got, err := service.ListRooms(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, rooms, got)
	mockRooms.AssertNotCalled(t, "List")
}

func TestListRooms_NoCacheConfigured(t *testing.T) {
	mockRooms := new(MockRoomRepository)

	rooms := []domain.Room{{ID: 1, Name: "Garden Room"}, {ID: 2, Name: "Lake View Suite"}}
	mockRooms.On("List", mock.Anything).Return(rooms, nil)

	service := NewService(mockRooms, nil)

	got, err := service.ListRooms(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
