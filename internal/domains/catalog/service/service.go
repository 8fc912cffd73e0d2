package service

import (
	"context"
	"fmt"
	"strings"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/infras/s3"
	"pousada/internal/domains/catalog/model"
	"pousada/internal/domains/catalog/model/dto"
	"pousada/internal/domains/catalog/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/failure"
	"pousada/shared/jsonb"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = "catalog_item:get"
	cacheGetAllItem = "catalog_item:gets"
	cacheCountItem  = "catalog_item:count"
)

type Catalog interface {
	Create(ctx context.Context, req dto.CreateCatalogItemRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCatalogItemsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CatalogItemResponse, error)
	Update(ctx context.Context, req dto.UpdateCatalogItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) scoped(filter gDto.FilterGroup) gDto.FilterGroup {
	scoped := shared.FilterByProperty(s.cfg.App.PropertyID, model.TableName)
	if len(filter.Filters) > 0 {
		scoped.Filters = append(scoped.Filters, filter)
	}

	return scoped
}

// validateTypeSections enforces the type discrimination: loan/consumable
// items carry stock control, food/beverage items carry flavors.
func validateTypeSections(itemType string, stockControl *dto.StockControl, flavors []dto.Flavor) error {
	if model.IsStockControlled(itemType) {
		if len(flavors) > 0 {
			return failure.BadRequestFromString("flavors are only valid for food and beverage items")
		}

		return nil
	}

	if stockControl != nil {
		return failure.BadRequestFromString("stock control is only valid for loan and consumable items")
	}

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, req dto.CreateCatalogItemRequest) (imageURL, objectName string, err error) {
	if req.Image == nil {
		return constant.Empty, constant.Empty, nil
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	// Get original extension
	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, filename, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCatalogItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Price.IsNegative() {
		return failure.BadRequestFromString("price must not be negative") // nolint:wrapcheck
	}

	if err = validateTypeSections(req.Type, req.StockControl, req.Flavors); err != nil {
		return err
	}

	imageURL, uploadedObjectName, err := s.uploadImage(ctx, req)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, s.cfg.App.PropertyID, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCatalogItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for catalog items")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count catalog items")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, req, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog items")

		res.FromModels(nil, 0, req.Limit)

		return res, nil
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalog items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	scopedFilter := s.scoped(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountItem, req, scopedFilter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for catalog item count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, scopedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count catalog items")

		return res, fmt.Errorf("failed to count catalog items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalog item count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CatalogItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for catalog item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog item")

		return res, fmt.Errorf("failed to get catalog item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("catalog item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save catalog item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCatalogItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check catalog item existence")

		return fmt.Errorf("failed to check catalog item existence: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("catalog item not found")

		return failure.NotFound("catalog item not found") // nolint:wrapcheck
	}

	if req.Type != constant.Empty && req.Type != current.Type {
		return failure.BadRequestFromString("catalog item type cannot be changed") // nolint:wrapcheck
	}

	if req.Price != nil && req.Price.IsNegative() {
		return failure.BadRequestFromString("price must not be negative") // nolint:wrapcheck
	}

	if err = validateTypeSections(current.Type, req.StockControl, req.Flavors); err != nil {
		return err
	}

	return s.updateInternal(ctx, req, current, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateCatalogItemRequest, current model.CatalogItem, user string, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImageURL] = imageURL
	}

	if req.StockControl != nil {
		updatedFields["stock_control"] = jsonb.Of(&model.StockControl{
			Enabled:  req.StockControl.Enabled,
			Quantity: req.StockControl.Quantity,
		})
	}

	if len(req.Flavors) > 0 {
		flavors := make([]model.Flavor, len(req.Flavors))
		for i, flavor := range req.Flavors {
			flavorID := flavor.ID
			if flavorID == constant.Empty {
				flavorID = uuid.NewString()
			}

			flavors[i] = model.Flavor{
				ID:          flavorID,
				Name:        flavor.Name,
				Description: flavor.Description,
			}
		}

		updatedFields["flavors"] = jsonb.Of(flavors)
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update catalog item")

		// Cleanup: delete newly uploaded image if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update catalog item: %w", err)
	}

	// Delete old image if update succeeded and new image was uploaded
	if imageURL != constant.Empty && current.ImageURL != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, current.ImageURL)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, current.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete catalog item cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByIDScoped(s.cfg.App.PropertyID, id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if catalog item exists")

		return fmt.Errorf("failed to check if catalog item exists: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("catalog item not found")

		return failure.NotFound("catalog item not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete catalog item")

		return fmt.Errorf("failed to delete catalog item: %w", err)
	}

	if current.ImageURL != constant.Empty {
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, current.ImageURL)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete catalog item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return nil
}
