package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/internal/domains/payment/model"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/logger"
	gRepo "inn/shared/repository"
)

type Payment interface {
	Upsert(ctx context.Context, model model.Payment) (string, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts the payment, or replaces the existing one for the same
// booking. Bookings carry at most one payment (unique booking_id), so
// re-attaching updates amount, method and status in place. The returned id is
// the persisted row's id, which on conflict is the original one.
func (repo *repositoryImpl) Upsert(ctx context.Context, payment model.Payment) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.Upsert")
	defer scope.End()

	placeholders := []string{}
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			modified_at = EXCLUDED.modified_at,
			modified_by = EXCLUDED.modified_by
		RETURNING %s`,
		model.TableName, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "),
		model.FieldBookingID,
		model.FieldAmount, model.FieldAmount,
		model.FieldPaymentMethod, model.FieldPaymentMethod,
		model.FieldPaymentStatus, model.FieldPaymentStatus,
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := repo.db.Write.NamedQueryContext(ctx, query, payment)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to upsert payment: %w", err)
	}
	defer rows.Close()

	var id string

	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return "", fmt.Errorf("failed to scan upserted payment id: %w", err)
		}
	}

	return id, nil
}
