package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/internal/domains/booking/model"
	"inn/internal/domains/booking/model/dto"
	"inn/internal/domains/booking/repository"
	paymentModel "inn/internal/domains/payment/model"
	paymentRepo "inn/internal/domains/payment/repository"
	roomModel "inn/internal/domains/room/model"
	roomRepo "inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	UpdateArrival(ctx context.Context, req dto.UpdateArrivalStatusRequest, id string) error
	CancelUnpaid(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	paymentRepo paymentRepo.Payment
	cfg         *config.Config
	cache       cache.RedisCache
	broker      kafka.Client
	otel        otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, paymentRepo paymentRepo.Payment, cfg *config.Config, cache cache.RedisCache, broker kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		paymentRepo: paymentRepo,
		cfg:         cfg,
		cache:       cache,
		broker:      broker,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	// First pass over the room's active bookings. The stay is half-open
	// ([check_in, check_out)), so back-to-back stays never collide. The
	// authoritative re-check happens inside CreateExclusive under the room
	// row lock.
	active, err := s.repo.GetAll(ctx, gDto.QueryParams{}, activeBookingsForRoom(req.RoomID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings for room")

		return res, fmt.Errorf("failed to get active bookings for room: %w", err)
	}

	for _, existing := range active {
		if existing.Overlaps(checkIn, checkOut) {
			return res, failure.RoomUnavailable("Room already booked for these dates") // nolint:wrapcheck
		}
	}

	booking := req.ToModel(user, checkIn, checkOut)

	if err = s.repo.CreateExclusive(ctx, booking); err != nil {
		if failure.IsKind(err, failure.KindRoomUnavailable) || failure.IsKind(err, failure.KindTransient) {
			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publish(c, constant.BookingEventCreated, booking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	target := model.BookingStatus(req.Status)
	if !target.Valid() {
		return failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", req.Status)) // nolint:wrapcheck
	}

	if !booking.BookingStatus.CanTransition(target) {
		return failure.IllegalTransition(fmt.Sprintf("cannot change booking status from %s to %s", booking.BookingStatus, target)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldBookingStatus: string(target),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.BookingStatus = target

	event := constant.BookingEventStatusChanged
	if target == model.BookingStatusCancelled {
		event = constant.BookingEventCancelled
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publish(c, event, booking)
		s.invalidate(c, id)
	}()

	return nil
}

func (s *serviceImpl) UpdateArrival(ctx context.Context, req dto.UpdateArrivalStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateArrival")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.BookingStatus != model.BookingStatusConfirmed {
		return failure.Precondition("arrival tracking requires a confirmed booking") // nolint:wrapcheck
	}

	target := model.ArrivalStatus(req.Status)
	if !target.Valid() {
		return failure.BadRequestFromString(fmt.Sprintf("unknown arrival status %q", req.Status)) // nolint:wrapcheck
	}

	if !booking.ArrivalStatus.CanTransition(target) {
		return failure.IllegalTransition(fmt.Sprintf("cannot change arrival status from %s to %s", booking.ArrivalStatus, target)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldArrivalStatus: string(target),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update arrival status")

		return fmt.Errorf("failed to update arrival status: %w", err)
	}

	go func() {
		s.invalidate(context.WithoutCancel(ctx), id)
	}()

	return nil
}

// CancelUnpaid cancels the booking unless a completed payment is attached.
// Cancelling an already cancelled booking is a no-op so the operation can be
// retried safely.
func (s *serviceImpl) CancelUnpaid(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelUnpaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.BookingStatus == model.BookingStatusCancelled {
		return nil
	}

	payment, err := s.paymentRepo.Get(ctx, shared.FilterByID(id, paymentModel.FieldBookingID, paymentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment for booking")

		return fmt.Errorf("failed to get payment for booking: %w", err)
	}

	if payment.ID != constant.Empty && payment.PaymentStatus == paymentModel.PaymentStatusCompleted {
		return failure.InvalidState("booking already has a completed payment") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldBookingStatus: string(model.BookingStatusCancelled),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.BookingStatus = model.BookingStatusCancelled

	go func() {
		c := context.WithoutCancel(ctx)

		s.publish(c, constant.BookingEventCancelled, booking)
		s.invalidate(c, id)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		s.invalidate(context.WithoutCancel(ctx), id)
	}()

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, event string, booking model.Booking) {
	if s.broker == nil || !s.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: dto.NewBookingEvent(event, booking),
	}

	if err := s.broker.SendMessages(ctx, constant.KafkaTopicBookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func activeBookingsForRoom(roomID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingStatus,
				Value:    model.ActiveStatuses(),
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}
}
