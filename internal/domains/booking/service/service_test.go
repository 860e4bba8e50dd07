package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"inn/config"
	"inn/infras/otel/mocks"
	bookingMocks "inn/internal/domains/booking/mocks"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/service"
	paymentMocks "inn/internal/domains/payment/mocks"
	paymentModel "inn/internal/domains/payment/model"
	roomMocks "inn/internal/domains/room/mocks"
	cacheMocks "inn/shared/cache/mocks"
	"inn/shared/constant"
	"inn/shared/failure"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockPaymentRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockPaymentRepo, cfg, mockCache, nil, mockOtel)

	existing := model.Booking{
		ID:            "booking-1",
		RoomID:        "room-1",
		CheckIn:       day(10),
		CheckOut:      day(15),
		BookingStatus: model.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-20",
				CheckOut: "2026-03-25",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{existing}, nil)

				mockRepo.EXPECT().
					CreateExclusive(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "back to back stay is allowed",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-15",
				CheckOut: "2026-03-18",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{existing}, nil)

				mockRepo.EXPECT().
					CreateExclusive(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "overlapping stay is rejected",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-12",
				CheckOut: "2026-03-16",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{existing}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindRoomUnavailable,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "20-03-2026",
				CheckOut: "2026-03-25",
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "check out before check in",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-25",
				CheckOut: "2026-03-20",
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "zero night stay",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-20",
				CheckOut: "2026-03-20",
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "room does not exist",
			req: dto.CreateBookingRequest{
				RoomID:   "missing-room",
				CheckIn:  "2026-03-20",
				CheckOut: "2026-03-25",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "conflict detected under row lock",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-20",
				CheckOut: "2026-03-25",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)

				mockRepo.EXPECT().
					CreateExclusive(gomock.Any(), gomock.Any()).
					Return(failure.RoomUnavailable("Room already booked for these dates"))
			},
			wantErr:  true,
			wantKind: failure.KindRoomUnavailable,
		},
		{
			name: "lock wait surfaces as transient",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2026-03-20",
				CheckOut: "2026-03-25",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)

				mockRepo.EXPECT().
					CreateExclusive(gomock.Any(), gomock.Any()).
					Return(failure.Transient("booking could not be confirmed in time, please retry"))
			},
			wantErr:  true,
			wantKind: failure.KindTransient,
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
				assert.Equal(t, tt.req.RoomID, res.RoomID)
				assert.Equal(t, string(model.BookingStatusPending), res.BookingStatus)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockPaymentRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockPaymentRepo, cfg, mockCache, nil, mockOtel)

	booking := func(status model.BookingStatus) model.Booking {
		return model.Booking{
			ID:            "booking-1",
			RoomID:        "room-1",
			CheckIn:       day(10),
			CheckOut:      day(15),
			BookingStatus: status,
			ArrivalStatus: model.ArrivalStatusNotArrived,
		}
	}

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name:   "confirm pending booking",
			status: string(model.BookingStatusConfirmed),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusPending), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "cancel confirmed booking",
			status: string(model.BookingStatusCancelled),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "revive cancelled booking is rejected",
			status: string(model.BookingStatusConfirmed),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusCancelled), nil)
			},
			wantErr:  true,
			wantKind: failure.KindIllegalTransition,
		},
		{
			name:   "demote confirmed booking is rejected",
			status: string(model.BookingStatusPending),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed), nil)
			},
			wantErr:  true,
			wantKind: failure.KindIllegalTransition,
		},
		{
			name:   "unknown status is rejected",
			status: "Departed",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusPending), nil)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
		{
			name:   "booking not found",
			status: string(model.BookingStatusConfirmed),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, dto.UpdateBookingStatusRequest{Status: tt.status}, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind), "expected kind %s, got %s", tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_UpdateArrival(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockPaymentRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockPaymentRepo, cfg, mockCache, nil, mockOtel)

	booking := func(status model.BookingStatus, arrival model.ArrivalStatus) model.Booking {
		return model.Booking{
			ID:            "booking-1",
			RoomID:        "room-1",
			BookingStatus: status,
			ArrivalStatus: arrival,
		}
	}

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name:   "guest arrives",
			status: string(model.ArrivalStatusArrived),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed, model.ArrivalStatusNotArrived), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "guest departs",
			status: string(model.ArrivalStatusDeparted),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed, model.ArrivalStatusArrived), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:   "pending booking cannot track arrival",
			status: string(model.ArrivalStatusArrived),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusPending, model.ArrivalStatusNotArrived), nil)
			},
			wantErr:  true,
			wantKind: failure.KindPrecondition,
		},
		{
			name:   "skipping arrival is rejected",
			status: string(model.ArrivalStatusDeparted),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed, model.ArrivalStatusNotArrived), nil)
			},
			wantErr:  true,
			wantKind: failure.KindIllegalTransition,
		},
		{
			name:   "unknown arrival status is rejected",
			status: "Checked Out",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed, model.ArrivalStatusArrived), nil)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateArrival(ctx, dto.UpdateArrivalStatusRequest{Status: tt.status}, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind), "expected kind %s, got %s", tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CancelUnpaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockPaymentRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, mockPaymentRepo, cfg, mockCache, nil, mockOtel)

	booking := func(status model.BookingStatus) model.Booking {
		return model.Booking{
			ID:            "booking-1",
			RoomID:        "room-1",
			BookingStatus: status,
		}
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "cancel booking without payment",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed), nil)

				mockPaymentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentModel.Payment{}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancel booking with pending cash payment",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed), nil)

				mockPaymentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentModel.Payment{
						ID:            "payment-1",
						BookingID:     "booking-1",
						PaymentMethod: paymentModel.PaymentMethodCash,
						PaymentStatus: paymentModel.PaymentStatusPending,
					}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "completed payment blocks cancellation",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusConfirmed), nil)

				mockPaymentRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paymentModel.Payment{
						ID:            "payment-1",
						BookingID:     "booking-1",
						PaymentMethod: paymentModel.PaymentMethodBkash,
						PaymentStatus: paymentModel.PaymentStatusCompleted,
					}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidState,
		},
		{
			name: "already cancelled is a no-op",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(model.BookingStatusCancelled), nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "repository failure",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.CancelUnpaid(ctx, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.True(t, failure.IsKind(err, tt.wantKind), "expected kind %s, got %s", tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
