package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	roomMocks "inn/internal/domains/room/mocks"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				RoomNumber: "101",
				RoomType:   string(model.RoomTypeDouble),
				Price:      120,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			req: dto.CreateRoomRequest{
				RoomNumber: "101",
				RoomType:   string(model.RoomTypeDouble),
				Price:      120,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidState,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				RoomNumber: "102",
				RoomType:   string(model.RoomTypeSingle),
				Price:      80,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind), "expected kind %s, got %s", tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.RoomNumber, res.RoomNumber)
				assert.Equal(t, string(model.RoomStatusAvailable), res.Status)
			}
		})
	}
}

func TestRoomService_GetAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	rooms := []model.Room{
		{ID: "room-1", RoomNumber: "101", RoomType: model.RoomTypeDouble, Price: 120, Status: model.RoomStatusAvailable},
	}

	tests := []struct {
		name      string
		req       dto.AvailableRoomsRequest
		setupMock func()
		wantErr   bool
		wantCount int
	}{
		{
			name: "listing without dates",
			req:  dto.AvailableRoomsRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAvailable(gomock.Any(), "", float64(0), nil, nil).
					Return(rooms, nil)
			},
			wantErr:   false,
			wantCount: 1,
		},
		{
			name: "listing with date range",
			req: dto.AvailableRoomsRequest{
				RoomType: string(model.RoomTypeDouble),
				MaxPrice: 150,
				CheckIn:  "2026-03-10",
				CheckOut: "2026-03-15",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAvailable(gomock.Any(), string(model.RoomTypeDouble), float64(150), gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).
					Return(rooms, nil)
			},
			wantErr:   false,
			wantCount: 1,
		},
		{
			name: "check_in without check_out",
			req: dto.AvailableRoomsRequest{
				CheckIn: "2026-03-10",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check_out without check_in",
			req: dto.AvailableRoomsRequest{
				CheckOut: "2026-03-15",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "inverted date range",
			req: dto.AvailableRoomsRequest{
				CheckIn:  "2026-03-15",
				CheckOut: "2026-03-10",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invalid date format",
			req: dto.AvailableRoomsRequest{
				CheckIn:  "10/03/2026",
				CheckOut: "2026-03-15",
			},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAvailable(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindValidation))
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Rooms, tt.wantCount)
			}
		})
	}
}
