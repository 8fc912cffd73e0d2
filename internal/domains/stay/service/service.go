package service

import (
	"context"
	"fmt"

	"pousada/config"
	"pousada/infras/otel"
	cabinModel "pousada/internal/domains/cabin/model"
	cabinRepository "pousada/internal/domains/cabin/repository"
	guestModel "pousada/internal/domains/guest/model"
	guestRepository "pousada/internal/domains/guest/repository"
	guestService "pousada/internal/domains/guest/service"
	orderRepository "pousada/internal/domains/order/repository"
	"pousada/internal/domains/stay/model"
	"pousada/internal/domains/stay/model/dto"
	"pousada/internal/domains/stay/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetStay    = "stay:get"
	cacheGetAllStay = "stay:gets"
	cacheCountStay  = "stay:count"
)

type Stay interface {
	Create(ctx context.Context, req dto.CreateStayRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaysResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StayResponse, error)
	Update(ctx context.Context, req dto.UpdateStayRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Stay
	guestRepo    guestRepository.Guest
	cabinRepo    cabinRepository.Cabin
	orderRepo    orderRepository.Order
	guestService guestService.Guest
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Stay,
	guestRepo guestRepository.Guest,
	cabinRepo cabinRepository.Cabin,
	orderRepo orderRepository.Order,
	guestService guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stay {
	return &serviceImpl{
		repo:         repo,
		guestRepo:    guestRepo,
		cabinRepo:    cabinRepo,
		orderRepo:    orderRepo,
		guestService: guestService,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) scoped(filter gDto.FilterGroup) gDto.FilterGroup {
	scoped := shared.FilterByProperty(s.cfg.App.PropertyID, model.TableName)
	if len(filter.Filters) > 0 {
		scoped.Filters = append(scoped.Filters, filter)
	}

	return scoped
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStay, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete stay cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllStay)
	shared.InvalidateCaches(c, s.cache, cacheCountStay)
}

// resolveNames refreshes the denormalized guest and cabin names from the
// live rows with one IN query per side. Dangling references resolve to
// fixed placeholder labels; lookup errors keep the stored names.
func (s *serviceImpl) resolveNames(ctx context.Context, stays []model.Stay) {
	if len(stays) == 0 {
		return
	}

	guestRefs := make([]string, 0, len(stays))
	cabinRefs := make([]string, 0, len(stays))
	seenGuest := map[string]bool{}
	seenCabin := map[string]bool{}

	for _, stay := range stays {
		if !seenGuest[stay.GuestRef] {
			seenGuest[stay.GuestRef] = true

			guestRefs = append(guestRefs, stay.GuestRef)
		}

		if !seenCabin[stay.CabinRef] {
			seenCabin[stay.CabinRef] = true

			cabinRefs = append(cabinRefs, stay.CabinRef)
		}
	}

	guestNames, guestsOk := s.lookupGuestNames(ctx, guestRefs)
	cabinNames, cabinsOk := s.lookupCabinNames(ctx, cabinRefs)

	for i := range stays {
		if guestsOk {
			name, found := guestNames[stays[i].GuestRef]
			if !found {
				name = constant.GuestNotFoundLabel
			}

			stays[i].GuestName = name
		}

		if cabinsOk {
			name, found := cabinNames[stays[i].CabinRef]
			if !found {
				name = constant.CabinNotFoundLabel
			}

			stays[i].CabinName = name
		}
	}
}

func (s *serviceImpl) lookupGuestNames(ctx context.Context, refs []string) (map[string]string, bool) {
	filter := shared.FilterByProperty(s.cfg.App.PropertyID, guestModel.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    guestModel.FieldID,
		Operator: gDto.FilterOperatorIn,
		Value:    refs,
		Table:    guestModel.TableName,
	})

	guests, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, filter, guestModel.FieldID, guestModel.FieldFullName)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve guest names")

		return nil, false
	}

	names := make(map[string]string, len(guests))
	for _, guest := range guests {
		names[guest.ID] = guest.FullName
	}

	return names, true
}

func (s *serviceImpl) lookupCabinNames(ctx context.Context, refs []string) (map[string]string, bool) {
	filter := shared.FilterByProperty(s.cfg.App.PropertyID, cabinModel.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    cabinModel.FieldID,
		Operator: gDto.FilterOperatorIn,
		Value:    refs,
		Table:    cabinModel.TableName,
	})

	cabins, err := s.cabinRepo.GetAll(ctx, gDto.QueryParams{}, filter, cabinModel.FieldID, cabinModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve cabin names")

		return nil, false
	}

	names := make(map[string]string, len(cabins))
	for _, cabin := range cabins {
		names[cabin.ID] = cabin.Name
	}

	return names, true
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStayRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	guest, err := s.guestRepo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, req.GuestRef, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest for stay")

		return fmt.Errorf("failed to get guest for stay: %w", err)
	}

	if guest.ID == constant.Empty {
		return failure.BadRequestFromString("unknown guest reference") // nolint:wrapcheck
	}

	cabin, err := s.cabinRepo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, req.CabinRef, cabinModel.FieldID, cabinModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cabin for stay")

		return fmt.Errorf("failed to get cabin for stay: %w", err)
	}

	if cabin.ID == constant.Empty {
		return failure.BadRequestFromString("unknown cabin reference") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, s.cfg.App.PropertyID, guest.FullName, cabin.Name)); err != nil {
		return err
	}

	go s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStay, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stays")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stays")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stays")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	s.resolveNames(ctx, models)
	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stays to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStay, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stay count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stays")

		return res, fmt.Errorf("failed to count stays: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStay, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stay")

		return res, nil
	}

	stay, err := s.repo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay")

		return res, fmt.Errorf("failed to get stay: %w", err)
	}

	if stay.ID == constant.Empty {
		return res, failure.NotFound("stay not found") // nolint:wrapcheck
	}

	models := []model.Stay{stay}
	s.resolveNames(ctx, models)
	res.FromModel(models[0])

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStayRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay")

		return fmt.Errorf("failed to get stay: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("stay not found")

		return failure.NotFound("stay not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update stay")

		return fmt.Errorf("failed to update stay: %w", err)
	}

	if req.Status != nil && *req.Status == model.StatusCompleted && current.Status != model.StatusCompleted {
		s.accumulateGuestHistory(ctx, current)
	}

	go s.invalidate(ctx, id)

	return nil
}

// accumulateGuestHistory folds a freshly completed stay into the guest's
// history. Failures are logged, the stay update itself already succeeded.
func (s *serviceImpl) accumulateGuestHistory(ctx context.Context, stay model.Stay) {
	spent, err := s.orderRepo.SumTotalsByStay(ctx, stay.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum stay order totals")

		spent = decimal.Zero
	}

	if err := s.guestService.UpsertHistory(ctx, stay.GuestRef, spent, stay.CheckOut); err != nil {
		log.Error().Err(err).Str("stay", stay.ID).Msg("failed to accumulate guest history")
	}
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if stay exists")

		return fmt.Errorf("failed to check if stay exists: %w", err)
	}

	if !exist {
		log.Error().Msg("stay not found")

		return failure.NotFound("stay not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete stay")

		return fmt.Errorf("failed to delete stay: %w", err)
	}

	go s.invalidate(ctx, id)

	return nil
}
