package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inn/config"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/booking/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/logger"
	gRepo "inn/shared/repository"

	"github.com/lib/pq"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	CreateExclusive(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		cfg:        cfg,
		otel:       otel,
	}
}

// CreateExclusive inserts a booking after re-checking for overlapping active
// bookings inside a single write transaction. The room row is locked first so
// concurrent requests for the same room serialize; the whole transaction runs
// under a bounded deadline and surfaces as Transient when it expires.
func (repo *repositoryImpl) CreateExclusive(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateExclusive")
	defer scope.End()

	timeout := time.Duration(repo.cfg.DB.Postgres.QueryTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return repo.asTransient(fmt.Errorf("failed to begin booking transaction: %w", err))
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	lockQuery := "SELECT id FROM rooms WHERE id = $1 FOR UPDATE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	var roomID string
	if err = tx.GetContext(ctx, &roomID, lockQuery, booking.RoomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return repo.asTransient(fmt.Errorf("failed to lock room row: %w", err))
	}

	overlapQuery := `SELECT COUNT(id) FROM bookings
		WHERE room_id = $1
		AND booking_status = ANY($2)
		AND check_in < $3
		AND $4 < check_out`

	var overlapping int
	if err = tx.GetContext(ctx, &overlapping, overlapQuery, booking.RoomID, pq.Array(model.ActiveStatuses()), booking.CheckOut, booking.CheckIn); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return repo.asTransient(fmt.Errorf("failed to check overlapping bookings: %w", err))
	}

	if overlapping > 0 {
		err = failure.RoomUnavailable("Room already booked for these dates")

		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return repo.asTransient(err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return repo.asTransient(fmt.Errorf("failed to commit booking transaction: %w", err))
	}

	return nil
}

func (repo *repositoryImpl) asTransient(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return failure.Transient("booking could not be confirmed in time, please retry")
	}

	return err
}
