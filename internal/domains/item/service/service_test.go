package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	otelMocks "shareit/infras/otel/mocks"
	bookingDto "shareit/internal/domains/booking/model/dto"
	bookingMocks "shareit/internal/domains/booking/mocks"
	commentMocks "shareit/internal/domains/comment/mocks"
	commentModel "shareit/internal/domains/comment/model"
	itemMocks "shareit/internal/domains/item/mocks"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	requestMocks "shareit/internal/domains/request/mocks"
	userMocks "shareit/internal/domains/user/mocks"
	cacheMocks "shareit/shared/cache/mocks"
	gDto "shareit/shared/dto"
)

type itemMockSet struct {
	repo       *itemMocks.MockItem
	users      *userMocks.MockUser
	requests   *requestMocks.MockItemRequest
	comments   *commentMocks.MockComment
	projection *bookingMocks.MockProjection
	cache      *cacheMocks.MockRedisCache
}

func newItemService(t *testing.T) (service.Item, itemMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := itemMockSet{
		repo:       itemMocks.NewMockItem(ctrl),
		users:      userMocks.NewMockUser(ctrl),
		requests:   requestMocks.NewMockItemRequest(ctrl),
		comments:   commentMocks.NewMockComment(ctrl),
		projection: bookingMocks.NewMockProjection(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mocks.repo, mocks.users, mocks.requests, mocks.comments, mocks.projection, cfg, mocks.cache, otelMocks.NewOtel())

	return svc, mocks
}

func boolPtr(b bool) *bool { return &b }

func TestItemService_Create(t *testing.T) {
	requestID := int64(3)

	tests := []struct {
		name      string
		req       dto.CreateItemRequest
		setupMock func(m itemMockSet)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "cordless", Available: boolPtr(true)},
			setupMock: func(m itemMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().
					Create(gomock.Any(), model.Item{Name: "Drill", Description: "cordless", Available: true, OwnerID: 1}).
					Return(int64(5), nil)
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "creation for an item request",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "cordless", Available: boolPtr(true), RequestID: &requestID},
			setupMock: func(m itemMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.requests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(5), nil)
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
		},
		{
			name: "unknown item request",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "cordless", Available: boolPtr(true), RequestID: &requestID},
			setupMock: func(m itemMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.requests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown owner",
			req:  dto.CreateItemRequest{Name: "Drill", Description: "cordless", Available: boolPtr(true)},
			setupMock: func(m itemMockSet) {
				m.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newItemService(t)
			tt.setupMock(mocks)

			res, err := svc.Create(context.Background(), 1, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(5), res.ID)
			assert.Equal(t, int64(1), res.OwnerID)
		})
	}
}

func TestItemService_Update(t *testing.T) {
	existing := model.Item{ID: 5, Name: "Drill", Description: "cordless", Available: true, OwnerID: 1}

	tests := []struct {
		name      string
		ownerID   int64
		req       dto.UpdateItemRequest
		setupMock func(m itemMockSet)
		wantErr   bool
		check     func(t *testing.T, res dto.ItemResponse)
	}{
		{
			name:    "owner toggles availability off",
			ownerID: 1,
			req:     dto.UpdateItemRequest{Available: boolPtr(false)},
			setupMock: func(m itemMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), map[string]any{"available": false}, gomock.Any()).
					Return(nil)
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			check: func(t *testing.T, res dto.ItemResponse) {
				assert.False(t, res.Available)
				assert.Equal(t, "Drill", res.Name)
			},
		},
		{
			name:    "owner renames",
			ownerID: 1,
			req:     dto.UpdateItemRequest{Name: "Hammer drill"},
			setupMock: func(m itemMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				m.repo.EXPECT().
					Update(gomock.Any(), map[string]any{"name": "Hammer drill"}, gomock.Any()).
					Return(nil)
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			check: func(t *testing.T, res dto.ItemResponse) {
				assert.Equal(t, "Hammer drill", res.Name)
			},
		},
		{
			name:    "non-owner is rejected",
			ownerID: 2,
			req:     dto.UpdateItemRequest{Name: "Hammer drill"},
			setupMock: func(m itemMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
			},
			wantErr: true,
		},
		{
			name:    "item not found",
			ownerID: 1,
			req:     dto.UpdateItemRequest{Name: "Hammer drill"},
			setupMock: func(m itemMockSet) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newItemService(t)
			tt.setupMock(mocks)

			res, err := svc.Update(context.Background(), tt.ownerID, 5, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestItemService_GetByID(t *testing.T) {
	item := model.Item{ID: 5, Name: "Drill", Description: "cordless", Available: true, OwnerID: 1}

	t.Run("owner view embeds projections and comments", func(t *testing.T) {
		svc, mocks := newItemService(t)

		last := &bookingDto.ItemBookingResponse{ID: 10, BookerID: 2}
		next := &bookingDto.ItemBookingResponse{ID: 11, BookerID: 3}

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(item, nil)
		mocks.projection.EXPECT().ClosestPast(gomock.Any(), int64(1), int64(5)).Return(last, nil)
		mocks.projection.EXPECT().NearestFuture(gomock.Any(), int64(1), int64(5)).Return(next, nil)
		mocks.comments.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]commentModel.Comment{{ID: 1, Text: "great", AuthorName: "Bob"}}, nil)

		res, err := svc.GetByID(context.Background(), 1, 5)

		assert.NoError(t, err)
		assert.Equal(t, last, res.LastBooking)
		assert.Equal(t, next, res.NextBooking)
		assert.Len(t, res.Comments, 1)
		assert.Equal(t, "Bob", res.Comments[0].AuthorName)
	})

	t.Run("non-owner view has no projections", func(t *testing.T) {
		svc, mocks := newItemService(t)

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(item, nil)
		mocks.projection.EXPECT().ClosestPast(gomock.Any(), int64(2), int64(5)).Return(nil, nil)
		mocks.projection.EXPECT().NearestFuture(gomock.Any(), int64(2), int64(5)).Return(nil, nil)
		mocks.comments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := svc.GetByID(context.Background(), 2, 5)

		assert.NoError(t, err)
		assert.Nil(t, res.LastBooking)
		assert.Nil(t, res.NextBooking)
	})

	t.Run("item not found", func(t *testing.T) {
		svc, mocks := newItemService(t)

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)

		_, err := svc.GetByID(context.Background(), 1, 99)

		assert.Error(t, err)
	})
}

func TestItemService_Search(t *testing.T) {
	t.Run("blank text short-circuits", func(t *testing.T) {
		svc, _ := newItemService(t)

		res, err := svc.Search(context.Background(), "   ", gDto.QueryParams{Limit: 10})

		assert.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("matches available items only", func(t *testing.T) {
		svc, mocks := newItemService(t)

		mocks.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mocks.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Item, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "items.available = :available")
				assert.Contains(t, where, "LOWER(items.name) LIKE LOWER(:name)")
				assert.Contains(t, where, "LOWER(items.description) LIKE LOWER(:description)")
				assert.Contains(t, where, " OR ")
				assert.Equal(t, "%drill%", args["name"])

				return []model.Item{{ID: 5, Name: "Drill", Available: true, OwnerID: 1}}, nil
			})
		mocks.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := svc.Search(context.Background(), "drill", gDto.QueryParams{Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, mocks := newItemService(t)

		mocks.cache.EXPECT().Get(gomock.Any(), "item:search:drill:0:10", gomock.Any()).Return(nil)

		_, err := svc.Search(context.Background(), "drill", gDto.QueryParams{Limit: 10})

		assert.NoError(t, err)
	})
}

func TestItemService_GetOwn(t *testing.T) {
	svc, mocks := newItemService(t)

	items := []model.Item{{ID: 5, Name: "Drill", Available: true, OwnerID: 1}}

	mocks.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Item, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "items.owner_id = :owner_id")
			assert.Equal(t, int64(1), args["owner_id"])
			assert.Equal(t, 10, params.Limit)

			return items, nil
		})
	mocks.projection.EXPECT().ClosestPast(gomock.Any(), int64(1), int64(5)).Return(nil, nil)
	mocks.projection.EXPECT().NearestFuture(gomock.Any(), int64(1), int64(5)).Return(nil, nil)
	mocks.comments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := svc.GetOwn(context.Background(), 1, gDto.QueryParams{Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "Drill", res.Items[0].Name)
}
