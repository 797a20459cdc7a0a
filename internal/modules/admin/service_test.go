package admin

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kivulounge/internal/domain"
	"kivulounge/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListWithRoom(ctx context.Context, status, search string) ([]repository.AdminBookingRow, error) {
	args := m.Called(ctx, status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AdminBookingRow), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Stats(ctx context.Context, now time.Time) (repository.BookingStats, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(repository.BookingStats), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomRepository) Counts(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockRoomCache struct {
	mock.Mock
}

func (m *MockRoomCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) BookingConfirmed(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotificationSender) BookingCancelled(ctx context.Context, b *domain.Booking, reason string) error {
	args := m.Called(ctx, b, reason)
	return args.Error(0)
}

func TestUpdateBookingStatus_PendingToConfirmed(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockNotifs := new(MockNotificationSender)

	pending := &domain.Booking{ID: 1, Status: domain.BookingPending}
	confirmed := &domain.Booking{ID: 1, Status: domain.BookingConfirmed}

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(pending, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), "confirmed").Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(confirmed, nil)
	mockNotifs.On("BookingConfirmed", mock.Anything, confirmed).Return(nil)

	service := NewService(mockBookings, new(MockRoomRepository), nil, mockNotifs)

	b, err := service.UpdateBookingStatus(context.Background(), 1, domain.BookingConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockNotifs.AssertCalled(t, "BookingConfirmed", mock.Anything, confirmed)
}

func TestUpdateBookingStatus_NeverMovesBackwards(t *testing.T) {
	cases := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{"confirmed back to pending", domain.BookingConfirmed, domain.BookingPending},
		{"completed to cancelled", domain.BookingCompleted, domain.BookingCancelled},
		{"cancelled to confirmed", domain.BookingCancelled, domain.BookingConfirmed},
		{"pending straight to completed", domain.BookingPending, domain.BookingCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockBookings := new(MockBookingRepository)
			mockBookings.On("GetByID", mock.Anything, int64(1)).
				Return(&domain.Booking{ID: 1, Status: tc.from}, nil)

			service := NewService(mockBookings, new(MockRoomRepository), nil, nil)

			_, err := service.UpdateBookingStatus(context.Background(), 1, tc.to)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			mockBookings.AssertNotCalled(t, "UpdateStatus")
		})
	}
}

func TestStats_CombinesBookingAndRoomCounts(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("Stats", mock.Anything, mock.Anything).Return(repository.BookingStats{
		Total:     10,
		Pending:   3,
		Confirmed: 4,
		Completed: 2,
		Cancelled: 1,
		Revenue:   1250,
	}, nil)
	mockRooms.On("Counts", mock.Anything).Return(int64(6), int64(5), nil)

	service := NewService(mockBookings, mockRooms, nil, nil)

	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalBookings)
	assert.Equal(t, 1250.0, stats.Revenue)
	assert.Equal(t, int64(6), stats.TotalRooms)
	assert.Equal(t, int64(5), stats.AvailableRooms)
}

func TestExportCSV(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	phone := "+250788000111"
	mockBookings.On("ListWithRoom", mock.Anything, "", "").Return([]repository.AdminBookingRow{
		{
			GuestName:   "Alice Uwase",
			GuestEmail:  "alice@example.com",
			GuestPhone:  &phone,
			BookingType: "daily",
			Status:      "confirmed",
			CheckIn:     time.Date(2027, 6, 1, 12, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2027, 6, 3, 12, 0, 0, 0, time.UTC),
			TotalCost:   100,
			RoomName:    "Lake View Suite",
		},
	}, nil)

	service := NewService(mockBookings, new(MockRoomRepository), nil, nil)

	var buf bytes.Buffer
	err := service.ExportCSV(context.Background(), &buf, "", "")

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Guest Name,Email,Phone,Room,Check-in,Check-out,Status,Total Cost,Booking Type")
	assert.Contains(t, out, "Alice Uwase,alice@example.com,+250788000111,Lake View Suite,2027-06-01,2027-06-03,confirmed,100.00,daily")
}

func TestRoomMutationsInvalidateCatalogCache(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockCache := new(MockRoomCache)

	mockRooms.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRooms.On("Delete", mock.Anything, int64(3)).Return(nil)
	mockCache.On("Invalidate", mock.Anything).Return()

	service := NewService(new(MockBookingRepository), mockRooms, mockCache, nil)

	_, err := service.CreateRoom(context.Background(), RoomRequest{
		Name: "Garden Room", Capacity: 2, DailyRate: 40, HourlyRate: 8,
	})
	assert.NoError(t, err)

	err = service.DeleteRoom(context.Background(), 3)
	assert.NoError(t, err)

	mockCache.AssertNumberOfCalls(t, "Invalidate", 2)
}
