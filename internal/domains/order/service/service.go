package service

import (
	"context"
	"fmt"

	"pousada/config"
	"pousada/infras/otel"
	catalogModel "pousada/internal/domains/catalog/model"
	catalogRepository "pousada/internal/domains/catalog/repository"
	"pousada/internal/domains/order/model"
	"pousada/internal/domains/order/model/dto"
	"pousada/internal/domains/order/repository"
	stayModel "pousada/internal/domains/stay/model"
	stayRepository "pousada/internal/domains/stay/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetAllOrder = "order:gets"
	cacheCountOrder  = "order:count"
)

type Order interface {
	Create(ctx context.Context, req dto.CreateOrderRequest, stayID string) error
	GetAllByStay(ctx context.Context, stayID string, req gDto.QueryParams) (dto.GetOrdersResponse, error)
	Delete(ctx context.Context, id string) error
	GetTodayBreakfastOrders(ctx context.Context) (dto.GetBreakfastOrdersResponse, error)
	GetExpectedDiners(ctx context.Context) (dto.ExpectedDinersResponse, error)
}

type serviceImpl struct {
	repo        repository.Order
	stayRepo    stayRepository.Stay
	catalogRepo catalogRepository.Catalog
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Order,
	stayRepo stayRepository.Stay,
	catalogRepo catalogRepository.Catalog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Order {
	return &serviceImpl{
		repo:        repo,
		stayRepo:    stayRepo,
		catalogRepo: catalogRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
	shared.InvalidateCaches(c, s.cache, cacheCountOrder)
}

// scopedByStay matches orders of one stay within the property. Property
// scoping rides on the stays join since orders carry no property column.
func (s *serviceImpl) scopedByStay(stayID string) gDto.FilterGroup {
	filter := shared.FilterByProperty(s.cfg.App.PropertyID, stayModel.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStayRef,
		Operator: gDto.FilterOperatorEq,
		Value:    stayID,
		Table:    model.TableName,
	})

	return filter
}

func (s *serviceImpl) stayExists(ctx context.Context, stayID string) (bool, error) {
	return s.stayRepo.Exist(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, stayID, stayModel.FieldID, stayModel.TableName)) // nolint:wrapcheck
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOrderRequest, stayID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.stayExists(ctx, stayID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check stay existence")

		return fmt.Errorf("failed to check stay existence: %w", err)
	}

	if !exist {
		return failure.NotFound("stay not found") // nolint:wrapcheck
	}

	item, err := s.catalogRepo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, req.CatalogItemRef, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog item for order")

		return fmt.Errorf("failed to get catalog item for order: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.BadRequestFromString("unknown catalog item reference") // nolint:wrapcheck
	}

	total := item.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))

	if err = s.repo.Insert(ctx, req.ToModel(user, stayID, item.Name, total)); err != nil {
		return err
	}

	go s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAllByStay(ctx context.Context, stayID string, req gDto.QueryParams) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByStay")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.stayExists(ctx, stayID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check stay existence")

		return res, fmt.Errorf("failed to check stay existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("stay not found") // nolint:wrapcheck
	}

	filter := s.scopedByStay(stayID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for orders")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count orders")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	scopedFilter := shared.FilterByProperty(s.cfg.App.PropertyID, stayModel.TableName)
	scopedFilter.Filters = append(scopedFilter.Filters, gDto.Filter{
		Field:    model.FieldID,
		Operator: gDto.FilterOperatorEq,
		Value:    id,
		Table:    model.TableName,
	})

	// existence runs through the stays join, the delete itself cannot
	order, err := s.repo.Get(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == constant.Empty {
		log.Error().Msg("order not found")

		return failure.NotFound("order not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete order")

		return fmt.Errorf("failed to delete order: %w", err)
	}

	go s.invalidate(ctx)

	return nil
}

// GetTodayBreakfastOrders collects the food and beverage orders created
// today by currently active stays. Orders pointing at a removed catalog
// item are dropped. Read errors degrade to an empty list.
func (s *serviceImpl) GetTodayBreakfastOrders(ctx context.Context) (res dto.GetBreakfastOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTodayBreakfastOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	startOfToday := timezone.StartOfToday()
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)

	filter := shared.FilterByProperty(s.cfg.App.PropertyID, stayModel.TableName)
	filter.Filters = append(filter.Filters,
		gDto.Filter{
			Field:    stayModel.FieldStatus,
			ArgName:  "stay_status",
			Operator: gDto.FilterOperatorEq,
			Value:    stayModel.StatusActive,
			Table:    stayModel.TableName,
		},
		gDto.Filter{
			Field:    constant.FieldCreatedAt,
			ArgName:  "created_from",
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    startOfToday,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    constant.FieldCreatedAt,
			ArgName:  "created_to",
			Operator: gDto.FilterOperatorLess,
			Value:    startOfTomorrow,
			Table:    model.TableName,
		},
	)

	res.Orders = []dto.BreakfastOrderResponse{}

	orders, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's orders")

		return res, nil
	}

	if len(orders) == 0 {
		return res, nil
	}

	itemTypes, ok := s.lookupItemTypes(ctx, orders)
	if !ok {
		return res, nil
	}

	for _, order := range orders {
		itemType, found := itemTypes[order.CatalogItemRef]
		if !found {
			continue
		}

		if itemType != catalogModel.TypeFood && itemType != catalogModel.TypeBeverage {
			continue
		}

		annotated := dto.BreakfastOrderResponse{}
		annotated.FromModel(order, itemType)

		res.Orders = append(res.Orders, annotated)
	}

	return res, nil
}

func (s *serviceImpl) lookupItemTypes(ctx context.Context, orders []model.Order) (map[string]string, bool) {
	refs := make([]string, 0, len(orders))
	seen := map[string]bool{}

	for _, order := range orders {
		if !seen[order.CatalogItemRef] {
			seen[order.CatalogItemRef] = true

			refs = append(refs, order.CatalogItemRef)
		}
	}

	filter := shared.FilterByProperty(s.cfg.App.PropertyID, catalogModel.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    catalogModel.FieldID,
		Operator: gDto.FilterOperatorIn,
		Value:    refs,
		Table:    catalogModel.TableName,
	})

	items, err := s.catalogRepo.GetAll(ctx, gDto.QueryParams{}, filter, catalogModel.FieldID, catalogModel.FieldType)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve catalog items for breakfast orders")

		return nil, false
	}

	types := make(map[string]string, len(items))
	for _, item := range items {
		types[item.ID] = item.Type
	}

	return types, true
}

// GetExpectedDiners answers 0 on any read error.
func (s *serviceImpl) GetExpectedDiners(ctx context.Context) (dto.ExpectedDinersResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetExpectedDiners")
	defer scope.End()

	total, err := s.stayRepo.SumActiveGuests(ctx, s.cfg.App.PropertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum expected diners")

		return dto.ExpectedDinersResponse{ExpectedDiners: 0}, nil
	}

	return dto.ExpectedDinersResponse{ExpectedDiners: total}, nil
}
