package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kivulounge/internal/domain"
)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	if msg != nil {
		msg.ID = 1
	}
	return args.Error(0)
}

func (m *MockChatRepository) List(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(message interface{}) {
	m.Called(message)
}

func TestPost_AuthenticatedUser(t *testing.T) {
	mockMessages := new(MockChatRepository)
	mockHub := new(MockBroadcaster)

	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockHub.On("Broadcast", mock.Anything).Return()

	service := NewService(mockMessages, mockHub)

	msg, err := service.Post(context.Background(), 7, false, PostMessageRequest{
		Message: "Is early check-in possible?",
	})

	assert.NoError(t, err)
	assert.NotNil(t, msg.UserID)
	assert.Equal(t, int64(7), *msg.UserID)
	assert.False(t, msg.IsFromSupport)
	mockHub.AssertCalled(t, "Broadcast", msg)
}

func TestPost_GuestWithIdentity(t *testing.T) {
	mockMessages := new(MockChatRepository)

	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockMessages, nil)

	msg, err := service.Post(context.Background(), 0, false, PostMessageRequest{
		Message:    "Do you have lake view rooms?",
		GuestName:  "Alice Uwase",
		GuestEmail: "alice@example.com",
	})

	assert.NoError(t, err)
	assert.Nil(t, msg.UserID)
	assert.Equal(t, "Alice Uwase", msg.GuestName)
}

func TestPost_GuestWithoutIdentityIsRejected(t *testing.T) {
	mockMessages := new(MockChatRepository)

	service := NewService(mockMessages, nil)

	_, err := service.Post(context.Background(), 0, false, PostMessageRequest{
		Message: "Hello?",
	})

	assert.ErrorIs(t, err, ErrGuestIdentityRequired)
	mockMessages.AssertNotCalled(t, "Create")
}

func TestPost_SupportReply(t *testing.T) {
	mockMessages := new(MockChatRepository)

	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockMessages, nil)

	msg, err := service.Post(context.Background(), 1, true, PostMessageRequest{
		Message: "Yes, rooms 2 and 3 face the lake.",
	})

	assert.NoError(t, err)
	assert.True(t, msg.IsFromSupport)
}
