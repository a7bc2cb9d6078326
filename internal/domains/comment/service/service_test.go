package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	otelMocks "shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	commentMocks "shareit/internal/domains/comment/mocks"
	"shareit/internal/domains/comment/model"
	"shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/comment/service"
	itemMocks "shareit/internal/domains/item/mocks"
	userMocks "shareit/internal/domains/user/mocks"
	userModel "shareit/internal/domains/user/model"
	"shareit/shared/clock"
	"shareit/shared/failure"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

type commentMockSet struct {
	repo        *commentMocks.MockComment
	users       *userMocks.MockUser
	items       *itemMocks.MockItem
	eligibility *bookingMocks.MockEligibility
}

func newCommentService(t *testing.T) (service.Comment, commentMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := commentMockSet{
		repo:        commentMocks.NewMockComment(ctrl),
		users:       userMocks.NewMockUser(ctrl),
		items:       itemMocks.NewMockItem(ctrl),
		eligibility: bookingMocks.NewMockEligibility(ctrl),
	}

	svc := service.New(mocks.repo, mocks.users, mocks.items, mocks.eligibility, clock.NewFixed(testNow), &config.Config{}, otelMocks.NewOtel())

	return svc, mocks
}

func TestCommentService_Create(t *testing.T) {
	author := userModel.User{ID: 2, Name: "Bob", Email: "bob@example.com"}

	tests := []struct {
		name      string
		setupMock func(m commentMockSet)
		wantErr   error
	}{
		{
			name: "eligible booker comments",
			setupMock: func(m commentMockSet) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				m.items.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.eligibility.EXPECT().CanComment(gomock.Any(), int64(2), int64(5)).Return(true, nil)
				m.repo.EXPECT().
					Create(gomock.Any(), model.Comment{Text: "great", ItemID: 5, AuthorID: 2, Created: testNow}).
					Return(int64(1), nil)
			},
		},
		{
			name: "no finished booking",
			setupMock: func(m commentMockSet) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				m.items.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.eligibility.EXPECT().CanComment(gomock.Any(), int64(2), int64(5)).Return(false, nil)
			},
			wantErr: service.ErrCommentNotAllowed,
		},
		{
			name: "unknown author",
			setupMock: func(m commentMockSet) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: failure.NotFound("user not found"),
		},
		{
			name: "unknown item",
			setupMock: func(m commentMockSet) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				m.items.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: failure.NotFound("item not found"),
		},
		{
			name: "repository error",
			setupMock: func(m commentMockSet) {
				m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(author, nil)
				m.items.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.eligibility.EXPECT().CanComment(gomock.Any(), int64(2), int64(5)).Return(true, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newCommentService(t)
			tt.setupMock(mocks)

			res, err := svc.Create(context.Background(), 2, 5, dto.CreateCommentRequest{Text: "great"})

			if tt.wantErr != nil {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "Bob", res.AuthorName)
			assert.Equal(t, "2026-06-15T12:00:00", res.Created)
		})
	}
}
