package service

import (
	"context"
	"fmt"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/content/model"
	"pousada/internal/domains/content/model/dto"
	"pousada/internal/domains/content/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/jsonb"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetContent    = "content:get"
	cacheGetAllContent = "content:gets"
	cacheCountContent  = "content:count"
)

type Content interface {
	Create(ctx context.Context, req dto.CreateContentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ContentResponse, error)
	Update(ctx context.Context, req dto.UpdateContentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Content
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
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
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete content cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllContent)
	shared.InvalidateCaches(c, s.cache, cacheCountContent)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user, s.cfg.App.PropertyID)); err != nil {
		return err
	}

	go s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContent, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contents")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contents")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contents")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountContent, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contents")

		return res, fmt.Errorf("failed to count contents: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for content")

		return res, nil
	}

	content, err := s.repo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get content")

		return res, fmt.Errorf("failed to get content: %w", err)
	}

	if content.ID == constant.Empty {
		return res, failure.NotFound("content not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save content to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check content existence")

		return fmt.Errorf("failed to check content existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("content not found")

		return failure.NotFound("content not found") // nolint:wrapcheck
	}

	if req.Type != constant.Empty && req.Type != current.Type {
		return failure.BadRequestFromString("content type cannot be changed") // nolint:wrapcheck
	}

	if req.EventDetails != nil && current.Type != model.TypeEvent {
		return failure.BadRequestFromString("event details are only valid for event content") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if len(req.TargetAudience) > 0 {
		updatedFields["target_audience"] = jsonb.Of(req.TargetAudience)
	}

	if req.EventDetails != nil {
		updatedFields["event_details"] = jsonb.Of(&model.EventDetails{
			Start:    req.EventDetails.Start,
			End:      req.EventDetails.End,
			Location: req.EventDetails.Location,
		})
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update content")

		return fmt.Errorf("failed to update content: %w", err)
	}

	go s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if content exists")

		return fmt.Errorf("failed to check if content exists: %w", err)
	}

	if !exist {
		log.Error().Msg("content not found")

		return failure.NotFound("content not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete content")

		return fmt.Errorf("failed to delete content: %w", err)
	}

	go s.invalidate(ctx, id)

	return nil
}
