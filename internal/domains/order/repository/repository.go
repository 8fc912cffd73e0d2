package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pousada/infras/otel"
	"pousada/infras/postgres"
	"pousada/internal/domains/order/model"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/logger"
	gRepo "pousada/shared/repository"

	"github.com/shopspring/decimal"
)

type Order interface {
	Insert(ctx context.Context, model model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Order, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SumTotalsByStay(ctx context.Context, stayID string) (decimal.Decimal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Order {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumTotalsByStay totals the non-cancelled order prices of one stay.
func (repo *repositoryImpl) SumTotalsByStay(ctx context.Context, stayID string) (decimal.Decimal, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".order.SumTotalsByStay")
	defer scope.End()

	query := "SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE stay_ref = $1 AND status != $2"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total decimal.Decimal

	err := repo.db.Read.GetContext(ctx, &total, query, stayID, model.StatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return decimal.Zero, fmt.Errorf("failed to sum stay order totals: %w", err)
	}

	return total, nil
}
