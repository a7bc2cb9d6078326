package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	kafkaMocks "shareit/infras/kafka/mocks"
	otelMocks "shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	userMocks "shareit/internal/domains/user/mocks"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

type bookingMockSet struct {
	repo  *bookingMocks.MockBooking
	users *userMocks.MockUser
	items *itemMocks.MockItem
	kafka *kafkaMocks.MockClient
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := bookingMockSet{
		repo:  bookingMocks.NewMockBooking(ctrl),
		users: userMocks.NewMockUser(ctrl),
		items: itemMocks.NewMockItem(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topic.BookingEvents = "booking-events"

	svc := service.New(mocks.repo, mocks.users, mocks.items, clock.NewFixed(testNow), mocks.kafka, cfg, otelMocks.NewOtel())

	return svc, mocks
}

func createReq(start, end time.Time) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ItemID: 1,
		Start:  start.Format(constant.DateFormat),
		End:    end.Format(constant.DateFormat),
	}
}

func TestBookingService_Create(t *testing.T) {
	availableItem := itemModel.Item{ID: 1, Name: "Drill", Available: true, OwnerID: 1}

	tests := []struct {
		name      string
		bookerID  int64
		req       dto.CreateBookingRequest
		setupMock func(m bookingMockSet)
		wantErr   error
	}{
		{
			name:     "successful creation is WAITING",
			bookerID: 2,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(2*time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.items.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableItem, nil)
				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
						assert.Equal(t, model.StatusWaiting, booking.Status)
						assert.Equal(t, int64(2), booking.BookerID)

						return int64(10), nil
					})
				m.kafka.EXPECT().SendMessages(gomock.Any(), "booking-events", gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name:     "unknown requester",
			bookerID: 99,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(2*time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: failure.NotFound("user not found"),
		},
		{
			name:     "window in the past",
			bookerID: 2,
			req:      createReq(testNow.Add(-2*time.Hour), testNow.Add(-time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: service.ErrPastDate,
		},
		{
			name:     "end before start",
			bookerID: 2,
			req:      createReq(testNow.Add(2*time.Hour), testNow.Add(time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: service.ErrEndBeforeStart,
		},
		{
			name:     "end equals start",
			bookerID: 2,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: service.ErrEndEqualsStart,
		},
		{
			name:     "item not found",
			bookerID: 2,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(2*time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.items.EXPECT().Get(gomock.Any(), gomock.Any()).Return(itemModel.Item{}, nil)
			},
			wantErr: failure.NotFound("item not found"),
		},
		{
			name:     "owner cannot book own item",
			bookerID: 1,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(2*time.Hour)),
			setupMock: func(m bookingMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.items.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableItem, nil)
			},
			wantErr: service.ErrSelfReservation,
		},
		{
			name:     "owner branch wins over availability",
			bookerID: 1,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(2*time.Hour)),
			setupMock: func(m bookingMockSet) {
				unavailable := availableItem
				unavailable.Available = false

				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.items.EXPECT().Get(gomock.Any(), gomock.Any()).Return(unavailable, nil)
			},
			wantErr: service.ErrSelfReservation,
		},
		{
			name:     "item unavailable",
			bookerID: 2,
			req:      createReq(testNow.Add(time.Hour), testNow.Add(2*time.Hour)),
			setupMock: func(m bookingMockSet) {
				unavailable := availableItem
				unavailable.Available = false

				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.items.EXPECT().Get(gomock.Any(), gomock.Any()).Return(unavailable, nil)
			},
			wantErr: service.ErrItemUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			tt.setupMock(mocks)

			res, err := svc.Create(context.Background(), tt.bookerID, tt.req)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, failure.GetCode(tt.wantErr), failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(10), res.ID)
			assert.Equal(t, model.StatusWaiting, res.Status)
			assert.Equal(t, "Drill", res.Item.Name)
		})
	}
}

func TestBookingService_Decide(t *testing.T) {
	waiting := model.Booking{
		ID:        10,
		StartDate: testNow.Add(time.Hour),
		EndDate:   testNow.Add(2 * time.Hour),
		ItemID:    1,
		BookerID:  2,
		Status:    model.StatusWaiting,
		ItemName:  "Drill",
		OwnerID:   1,
	}

	tests := []struct {
		name       string
		ownerID    int64
		approve    bool
		setupMock  func(m bookingMockSet)
		wantErr    error
		wantStatus string
	}{
		{
			name:    "approve",
			ownerID: 1,
			approve: true,
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				m.repo.EXPECT().
					Transition(gomock.Any(), int64(10), model.StatusWaiting, model.StatusApproved).
					Return(true, nil)
				m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:    "reject",
			ownerID: 1,
			approve: false,
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				m.repo.EXPECT().
					Transition(gomock.Any(), int64(10), model.StatusWaiting, model.StatusRejected).
					Return(true, nil)
				m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:    "booking not found",
			ownerID: 1,
			approve: true,
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr: failure.NotFound("booking not found"),
		},
		{
			name:    "not the owner",
			ownerID: 2,
			approve: true,
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
			},
			wantErr: service.ErrNotOwner,
		},
		{
			name:    "already approved",
			ownerID: 1,
			approve: false,
			setupMock: func(m bookingMockSet) {
				decided := waiting
				decided.Status = model.StatusApproved

				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(decided, nil)
			},
			wantErr: service.ErrAlreadyDecided,
		},
		{
			name:    "lost decision race",
			ownerID: 1,
			approve: true,
			setupMock: func(m bookingMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				m.repo.EXPECT().
					Transition(gomock.Any(), int64(10), model.StatusWaiting, model.StatusApproved).
					Return(false, nil)
			},
			wantErr: service.ErrAlreadyDecided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			tt.setupMock(mocks)

			res, err := svc.Decide(context.Background(), tt.ownerID, 10, tt.approve)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, failure.GetCode(tt.wantErr), failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestBookingService_GetByID(t *testing.T) {
	booking := model.Booking{
		ID:       10,
		ItemID:   1,
		BookerID: 2,
		Status:   model.StatusWaiting,
		OwnerID:  1,
	}

	tests := []struct {
		name     string
		viewerID int64
		wantErr  bool
	}{
		{name: "booker can view", viewerID: 2},
		{name: "owner can view", viewerID: 1},
		{name: "stranger cannot view", viewerID: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)
			mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

			res, err := svc.GetByID(context.Background(), tt.viewerID, 10)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 403, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(10), res.ID)
		})
	}
}

func TestBookingService_ListBuckets(t *testing.T) {
	tests := []struct {
		name       string
		state      string
		wantClause string
		wantErr    error
	}{
		{name: "default all", state: "", wantClause: ""},
		{name: "all lowercase", state: "all", wantClause: ""},
		{name: "future", state: "FUTURE", wantClause: "bookings.start_date > :start_date"},
		{name: "past", state: "past", wantClause: "bookings.end_date < :end_date"},
		{name: "current", state: "Current", wantClause: "bookings.start_date < :start_date"},
		{name: "waiting", state: "waiting", wantClause: "bookings.status = :status"},
		{name: "unsupported", state: "bogus", wantErr: service.ErrUnsupportedState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newBookingService(t)

			mocks.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

			if tt.wantErr == nil {
				mocks.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						where, _ := filter.GetWhereClause()
						assert.Contains(t, where, "bookings.booker_id = :booker_id")

						if tt.wantClause != "" {
							assert.Contains(t, where, tt.wantClause)
						}

						assert.Equal(t, "bookings.start_date", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return []model.Booking{}, nil
					})
			}

			_, err := svc.GetForBooker(context.Background(), 2, tt.state, gDto.QueryParams{Offset: 0, Limit: 10})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetForOwner_FiltersOnItemOwner(t *testing.T) {
	svc, mocks := newBookingService(t)

	mocks.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "items.owner_id = :owner_id")
			assert.Equal(t, int64(1), args["owner_id"])

			return []model.Booking{}, nil
		})

	_, err := svc.GetForOwner(context.Background(), 1, "ALL", gDto.QueryParams{Limit: 10})
	assert.NoError(t, err)
}

func TestBookingService_List_RepositoryError(t *testing.T) {
	svc, mocks := newBookingService(t)

	mocks.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.GetForBooker(context.Background(), 2, "ALL", gDto.QueryParams{Limit: 10})
	assert.Error(t, err)
}
