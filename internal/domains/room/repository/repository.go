package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"inn/infras/otel"
	"inn/infras/postgres"
	bookingModel "inn/internal/domains/booking/model"
	"inn/internal/domains/room/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"

	"github.com/lib/pq"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	GetAvailable(ctx context.Context, roomType string, maxPrice float64, checkIn, checkOut *time.Time) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAvailable lists rooms with status Available, optionally narrowed by type
// and price cap. When a date range is given, rooms holding an active booking
// that overlaps [checkIn, checkOut) are excluded.
func (repo *repositoryImpl) GetAvailable(ctx context.Context, roomType string, maxPrice float64, checkIn, checkOut *time.Time) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAvailable")
	defer scope.End()

	query := "SELECT * FROM rooms WHERE status = $1"
	args := []any{string(model.RoomStatusAvailable)}

	if roomType != "" {
		args = append(args, roomType)
		query += fmt.Sprintf(" AND room_type = $%d", len(args))
	}

	if maxPrice > 0 {
		args = append(args, maxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}

	if checkIn != nil && checkOut != nil {
		args = append(args, pq.Array(bookingModel.ActiveStatuses()), *checkOut, *checkIn)
		query += fmt.Sprintf(` AND NOT EXISTS (
			SELECT 1 FROM bookings
			WHERE bookings.room_id = rooms.id
			AND bookings.booking_status = ANY($%d)
			AND bookings.check_in < $%d
			AND $%d < bookings.check_out
		)`, len(args)-2, len(args)-1, len(args))
	}

	query += " ORDER BY id ASC"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	if err := repo.db.Read.SelectContext(ctx, &rooms, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}
