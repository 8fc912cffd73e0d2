package service

import (
	"context"
	"fmt"
	"time"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/guest/model"
	"pousada/internal/domains/guest/model/dto"
	"pousada/internal/domains/guest/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/jsonb"
	"pousada/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
	cacheCountGuest  = "guest:count"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, cpf string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, cpf string) error
	Delete(ctx context.Context, cpf string) error
	UpsertHistory(ctx context.Context, cpf string, spent decimal.Decimal, lastVisit time.Time) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
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

func (s *serviceImpl) invalidate(ctx context.Context, cpf string) {
	c := context.WithoutCancel(ctx)

	if cpf != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGuest, cpf)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
	shared.InvalidateCaches(c, s.cache, cacheCountGuest)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, req.Identity.CPF, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if exist {
		return failure.Conflict("a guest with this CPF is already registered") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, s.cfg.App.PropertyID)); err != nil {
		return err
	}

	go s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, cpf string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, cpf)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, cpf, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, cpf string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, cpf, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if !exist {
		log.Error().Msg("guest not found")

		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	// The row stays keyed by the original CPF even if the identity
	// document corrects it.
	updatedFields := shared.TransformFields(req, user)

	if req.Identity != nil {
		updatedFields[model.FieldIdentity] = jsonb.Of(model.Identity(*req.Identity))
		updatedFields[model.FieldFullName] = req.Identity.FullName
	}

	if req.Notes != nil {
		updatedFields[model.FieldNotes] = jsonb.Of(model.Notes(*req.Notes))
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	go s.invalidate(ctx, cpf)

	return nil
}

// UpsertHistory accumulates a completed stay into the guest's history
// document. A missing guest is not an error, the history is simply lost.
func (s *serviceImpl) UpsertHistory(ctx context.Context, cpf string, spent decimal.Decimal, lastVisit time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, cpf, model.FieldID, model.TableName)

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest for history update")

		return fmt.Errorf("failed to get guest for history update: %w", err)
	}

	if guest.ID == constant.Empty {
		log.Warn().Str("cpf", cpf).Msg("guest not found for history update")

		return nil
	}

	history := guest.History.V
	history.TotalStays++
	history.TotalSpent = history.TotalSpent.Add(spent)
	history.LastVisit = timezone.Format(lastVisit, constant.DateFormat)

	updatedFields := map[string]any{
		model.FieldHistory:       jsonb.Of(history),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update guest history")

		return fmt.Errorf("failed to update guest history: %w", err)
	}

	go s.invalidate(ctx, cpf)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, cpf string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, cpf, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest not found")

		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	go s.invalidate(ctx, cpf)

	return nil
}
