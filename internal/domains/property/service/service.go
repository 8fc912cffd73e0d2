package service

import (
	"context"
	"fmt"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/property/model"
	"pousada/internal/domains/property/model/dto"
	"pousada/internal/domains/property/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	"pousada/shared/failure"
	"pousada/shared/jsonb"
	"pousada/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProperty = "property:get"
)

type Property interface {
	Setup(ctx context.Context, token string, req dto.SetupPropertyRequest) (bool, error)
	Get(ctx context.Context) (dto.PropertyResponse, error)
	GetBreakfastSettings(ctx context.Context) (dto.BreakfastSettingsResponse, error)
	UpdateBreakfastSettings(ctx context.Context, req dto.UpdateBreakfastSettingsRequest) error
}

type serviceImpl struct {
	repo  repository.Property
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Property {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, s.cfg.App.PropertyID)); err != nil {
		log.Error().Err(err).Msg("failed to delete property cache")
	}
}

// Setup bootstraps the property row. It reports whether a row was created
// so the handler can distinguish first run from a no-op.
func (s *serviceImpl) Setup(ctx context.Context, token string, req dto.SetupPropertyRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Setup")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.cfg.App.SetupToken == constant.Empty || token != s.cfg.App.SetupToken {
		return false, failure.Unauthorized("invalid setup token") // nolint:wrapcheck
	}

	filter := shared.FilterByID(s.cfg.App.PropertyID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check property existence")

		return false, fmt.Errorf("failed to check property existence: %w", err)
	}

	if exist {
		return false, nil
	}

	if err = s.repo.Insert(ctx, req.ToModel(s.cfg.App.PropertyID)); err != nil {
		return false, err
	}

	go s.invalidate(ctx)

	return true, nil
}

func (s *serviceImpl) getProperty(ctx context.Context) (model.Property, error) {
	property, err := s.repo.Get(ctx, shared.FilterByID(s.cfg.App.PropertyID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, failure.NotFound("property not found") // nolint:wrapcheck
	}

	return property, nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProperty, s.cfg.App.PropertyID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.getProperty(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(property)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBreakfastSettings(ctx context.Context) (res dto.BreakfastSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBreakfastSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := s.getProperty(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(property.Settings.V.Breakfast)

	return res, nil
}

// UpdateBreakfastSettings patches only the module_breakfast section of the
// settings document, the other modules are carried over untouched.
func (s *serviceImpl) UpdateBreakfastSettings(ctx context.Context, req dto.UpdateBreakfastSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBreakfastSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	property, err := s.getProperty(ctx)
	if err != nil {
		return err
	}

	settings := property.Settings.V

	if req.Enabled != nil {
		settings.Breakfast.Enabled = *req.Enabled
	}

	if req.Modality != nil {
		settings.Breakfast.Modality = *req.Modality
	}

	if req.OrderDeadline != nil {
		settings.Breakfast.OrderDeadline = *req.OrderDeadline
	}

	if req.ServingHours != nil {
		settings.Breakfast.ServingHours = model.HourRange(*req.ServingHours)
	}

	updatedFields := map[string]any{
		model.FieldSettings:      jsonb.Of(settings),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	filter := shared.FilterByID(s.cfg.App.PropertyID, model.FieldID, model.TableName)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update breakfast settings")

		return fmt.Errorf("failed to update breakfast settings: %w", err)
	}

	go s.invalidate(ctx)

	return nil
}
