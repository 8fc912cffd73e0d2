package service

import (
	"context"
	"fmt"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/cabin/model"
	"pousada/internal/domains/cabin/model/dto"
	"pousada/internal/domains/cabin/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCabin    = "cabin:get"
	cacheGetAllCabin = "cabin:gets"
	cacheCountCabin  = "cabin:count"
)

type Cabin interface {
	Create(ctx context.Context, req dto.CreateCabinRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCabinsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CabinResponse, error)
	Update(ctx context.Context, req dto.UpdateCabinRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Cabin
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Cabin, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cabin {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// scoped nests the caller's filters under the property scope.
func (s *serviceImpl) scoped(filter gDto.FilterGroup) gDto.FilterGroup {
	scoped := shared.FilterByProperty(s.cfg.App.PropertyID, model.TableName)
	if len(filter.Filters) > 0 {
		scoped.Filters = append(scoped.Filters, filter)
	}

	return scoped
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCabinRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user, s.cfg.App.PropertyID)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCabin)
		shared.InvalidateCaches(c, s.cache, cacheCountCabin)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCabinsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCabin, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cabins")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cabins")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cabins")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cabins to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCabin, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cabin count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cabins")

		return res, fmt.Errorf("failed to count cabins: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cabin count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CabinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCabin, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cabin")

		return res, nil
	}

	cabin, err := s.repo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cabin")

		return res, fmt.Errorf("failed to get cabin: %w", err)
	}

	if cabin.ID == constant.Empty {
		return res, failure.NotFound("cabin not found") // nolint:wrapcheck
	}

	res.FromModel(cabin)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cabin to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCabinRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check cabin existence")

		return fmt.Errorf("failed to check cabin existence: %w", err)
	}

	if !exist {
		log.Error().Msg("cabin not found")

		return failure.NotFound("cabin not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update cabin")

		return fmt.Errorf("failed to update cabin: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCabin, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete cabin cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCabin)
		shared.InvalidateCaches(c, s.cache, cacheCountCabin)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cabin exists")

		return fmt.Errorf("failed to check if cabin exists: %w", err)
	}

	if !exist {
		log.Error().Msg("cabin not found")

		return failure.NotFound("cabin not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete cabin")

		return fmt.Errorf("failed to delete cabin: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCabin, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete cabin from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCabin)
		shared.InvalidateCaches(c, s.cache, cacheCountCabin)
	}()

	return nil
}
