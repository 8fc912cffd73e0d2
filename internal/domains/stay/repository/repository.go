package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"pousada/infras/otel"
	"pousada/infras/postgres"
	"pousada/internal/domains/stay/model"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/logger"
	gRepo "pousada/shared/repository"
)

type Stay interface {
	Insert(ctx context.Context, model model.Stay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Stay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Stay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SumActiveGuests(ctx context.Context, propertyID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Stay]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stay {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Stay](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumActiveGuests totals number_of_guests across active stays of the property.
func (repo *repositoryImpl) SumActiveGuests(ctx context.Context, propertyID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stay.SumActiveGuests")
	defer scope.End()

	query := "SELECT COALESCE(SUM(number_of_guests), 0) FROM stays WHERE property_id = $1 AND status = $2"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	err := repo.db.Read.GetContext(ctx, &total, query, propertyID, model.StatusActive)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum active stay guests: %w", err)
	}

	return total, nil
}
