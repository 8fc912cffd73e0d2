package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	s3Mocks "pousada/infras/s3/mocks"
	catalogMocks "pousada/internal/domains/catalog/mocks"
	"pousada/internal/domains/catalog/model"
	"pousada/internal/domains/catalog/model/dto"
	"pousada/internal/domains/catalog/service"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

func newCatalogService(t *testing.T) (service.Catalog, *catalogMocks.MockCatalog, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)

	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.PropertyID = "pousada-test"
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func TestCatalogService_Create(t *testing.T) {
	svc, mockRepo, mockCache, _ := newCatalogService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateCatalogItemRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation of a food item with flavors",
			req: dto.CreateCatalogItemRequest{
				Name:     "Tapioca",
				Type:     model.TypeFood,
				Category: "breakfast",
				Price:    decimal.NewFromFloat(12.50),
				Flavors: []dto.Flavor{
					{Name: "Queijo"},
					{Name: "Coco"},
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful creation of a loan item with stock control",
			req: dto.CreateCatalogItemRequest{
				Name:         "Beach Umbrella",
				Type:         model.TypeLoan,
				Category:     "beach",
				Price:        decimal.Zero,
				StockControl: &dto.StockControl{Enabled: true, Quantity: 8},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "negative price rejected",
			req: dto.CreateCatalogItemRequest{
				Name:     "Broken",
				Type:     model.TypeFood,
				Category: "breakfast",
				Price:    decimal.NewFromFloat(-1),
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "stock control rejected on a food item",
			req: dto.CreateCatalogItemRequest{
				Name:         "Suco de Laranja",
				Type:         model.TypeBeverage,
				Category:     "breakfast",
				Price:        decimal.NewFromFloat(8),
				StockControl: &dto.StockControl{Enabled: true, Quantity: 3},
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "flavors rejected on a loan item",
			req: dto.CreateCatalogItemRequest{
				Name:     "Snorkel Kit",
				Type:     model.TypeLoan,
				Category: "beach",
				Price:    decimal.Zero,
				Flavors:  []dto.Flavor{{Name: "Blue"}},
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateCatalogItemRequest{
				Name:     "Tapioca",
				Type:     model.TypeFood,
				Category: "breakfast",
				Price:    decimal.NewFromFloat(12.50),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_Get(t *testing.T) {
	svc, mockRepo, mockCache, _ := newCatalogService(t)

	item := model.CatalogItem{
		ID:       "item-id",
		Name:     "Tapioca",
		Type:     model.TypeFood,
		Category: "breakfast",
		Price:    decimal.NewFromFloat(12.50),
		IsActive: true,
		Flavors:  jsonb.Of([]model.Flavor{{ID: "flavor-id", Name: "Queijo"}}),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "item-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "item-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(item, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "item-id",
		},
		{
			name: "catalog item not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CatalogItem{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "item-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CatalogItem{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
					assert.Len(t, result.Flavors, 1)
				}
			}
		})
	}
}

func TestCatalogService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache, _ := newCatalogService(t)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantResult dto.GetCatalogItemsResponse
	}{
		{
			name:   "successful get all",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.CatalogItem{{ID: "item-id", Name: "Tapioca", Type: model.TypeFood}}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantResult: dto.GetCatalogItemsResponse{TotalData: 1, TotalPage: 1},
		},
		{
			name:   "count error degrades to empty page",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantResult: dto.GetCatalogItemsResponse{TotalData: 0, TotalPage: 1},
		},
		{
			name:   "get all error degrades to empty page",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantResult: dto.GetCatalogItemsResponse{TotalData: 0, TotalPage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
			assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
		})
	}
}

func TestCatalogService_Update(t *testing.T) {
	svc, mockRepo, mockCache, _ := newCatalogService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	current := model.CatalogItem{
		ID:       "item-id",
		Name:     "Tapioca",
		Type:     model.TypeFood,
		Category: "breakfast",
	}

	newPrice := decimal.NewFromFloat(15)
	negative := decimal.NewFromFloat(-3)

	tests := []struct {
		name      string
		req       dto.UpdateCatalogItemRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateCatalogItemRequest{Name: "Tapioca Especial", Price: &newPrice},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "type change rejected",
			req:  dto.UpdateCatalogItemRequest{Type: model.TypeLoan},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr: true,
		},
		{
			name: "same type accepted",
			req:  dto.UpdateCatalogItemRequest{Type: model.TypeFood, Name: "Tapioca Doce"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "negative price rejected",
			req:  dto.UpdateCatalogItemRequest{Price: &negative},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr: true,
		},
		{
			name: "stock control rejected on a food item",
			req:  dto.UpdateCatalogItemRequest{StockControl: &dto.StockControl{Enabled: true, Quantity: 2}},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr: true,
		},
		{
			name: "catalog item not found",
			req:  dto.UpdateCatalogItemRequest{Name: "Whatever"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CatalogItem{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "item-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_Delete(t *testing.T) {
	svc, mockRepo, mockCache, mockS3 := newCatalogService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete with image cleanup",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CatalogItem{ID: "item-id", ImageURL: "https://bucket.s3.amazonaws.com/catalog_item/img.png"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL(gomock.Any(), gomock.Any()).
					Return("catalog_item/img.png")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "catalog item not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CatalogItem{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CatalogItem{ID: "item-id"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "item-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
