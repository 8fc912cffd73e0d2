package dto_test

import (
	"testing"

	"pousada/internal/domains/catalog/model"
	"pousada/internal/domains/catalog/model/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
	"pousada/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateCatalogItemRequest_ToModel_Food(t *testing.T) {
	req := dto.CreateCatalogItemRequest{
		Name:     "Tapioca",
		Type:     model.TypeFood,
		Category: "breakfast",
		Price:    decimal.NewFromFloat(12.50),
		Flavors: []dto.Flavor{
			{Name: "Queijo"},
			{ID: "flavor-fixed", Name: "Coco"},
		},
	}

	userID := "test-user-id"
	item := req.ToModel(userID, "property-id", "https://cdn/img.png")

	assert.NotEmpty(t, item.ID, "expected ID to be generated")
	assert.Equal(t, "property-id", item.PropertyID)
	assert.Equal(t, req.Name, item.Name)
	assert.Equal(t, req.Type, item.Type)
	assert.True(t, req.Price.Equal(item.Price))
	assert.Equal(t, "https://cdn/img.png", item.ImageURL)
	assert.True(t, item.IsActive, "expected items to default to active")
	assert.Nil(t, item.StockControl.V, "food items carry flavors, not stock")
	assert.Len(t, item.Flavors.V, 2)
	assert.NotEmpty(t, item.Flavors.V[0].ID, "expected flavor ID to be generated")
	assert.Equal(t, "flavor-fixed", item.Flavors.V[1].ID, "expected provided flavor ID to be kept")
	assert.Equal(t, userID, item.CreatedBy)
	assert.False(t, item.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateCatalogItemRequest_ToModel_Loan(t *testing.T) {
	inactive := false
	req := dto.CreateCatalogItemRequest{
		Name:         "Secador de cabelo",
		Type:         model.TypeLoan,
		Category:     "amenities",
		IsActive:     &inactive,
		StockControl: &dto.StockControl{Enabled: true, Quantity: 3},
	}

	item := req.ToModel("test-user-id", "property-id", "")

	assert.False(t, item.IsActive)
	assert.Empty(t, item.Flavors.V)
	if assert.NotNil(t, item.StockControl.V) {
		assert.True(t, item.StockControl.V.Enabled)
		assert.Equal(t, 3, item.StockControl.V.Quantity)
	}
}

func TestCreateCatalogItemRequest_ToModel_LoanWithoutStock(t *testing.T) {
	req := dto.CreateCatalogItemRequest{
		Name:     "Guarda-sol",
		Type:     model.TypeConsumable,
		Category: "amenities",
	}

	item := req.ToModel("test-user-id", "property-id", "")

	if assert.NotNil(t, item.StockControl.V, "stock-controlled types always carry a stock block") {
		assert.False(t, item.StockControl.V.Enabled)
		assert.Zero(t, item.StockControl.V.Quantity)
	}
}

func TestCreateCatalogItemRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request dto.CreateCatalogItemRequest
		wantErr bool
	}{
		{
			name: "valid consumable with stock",
			request: dto.CreateCatalogItemRequest{
				Name:         "Protetor solar",
				Type:         model.TypeConsumable,
				Category:     "amenities",
				StockControl: &dto.StockControl{Enabled: true, Quantity: 10},
			},
		},
		{
			name: "negative stock quantity rejected",
			request: dto.CreateCatalogItemRequest{
				Name:         "Protetor solar",
				Type:         model.TypeConsumable,
				Category:     "amenities",
				StockControl: &dto.StockControl{Enabled: true, Quantity: -1},
			},
			wantErr: true,
		},
		{
			name: "valid food with flavors",
			request: dto.CreateCatalogItemRequest{
				Name:     "Tapioca",
				Type:     model.TypeFood,
				Category: "breakfast",
				Flavors:  []dto.Flavor{{Name: "Queijo"}, {Name: "Coco"}},
			},
		},
		{
			name: "flavor without a name rejected",
			request: dto.CreateCatalogItemRequest{
				Name:     "Tapioca",
				Type:     model.TypeFood,
				Category: "breakfast",
				Flavors:  []dto.Flavor{{Name: "Queijo"}, {Description: "sem nome"}},
			},
			wantErr: true,
		},
		{
			name: "name shorter than three chars rejected",
			request: dto.CreateCatalogItemRequest{
				Name:     "Ab",
				Type:     model.TypeFood,
				Category: "breakfast",
			},
			wantErr: true,
		},
		{
			name: "unknown type rejected",
			request: dto.CreateCatalogItemRequest{
				Name:     "Tapioca",
				Type:     "snack",
				Category: "breakfast",
			},
			wantErr: true,
		},
		{
			name: "missing category rejected",
			request: dto.CreateCatalogItemRequest{
				Name: "Tapioca",
				Type: model.TypeFood,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.request)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogItemResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	item := model.CatalogItem{
		ID:       "test-id",
		Name:     "Suco de laranja",
		Type:     model.TypeBeverage,
		Category: "breakfast",
		Price:    decimal.NewFromFloat(8.00),
		IsActive: true,
		Flavors:  jsonb.Of([]model.Flavor{{ID: "flavor-1", Name: "Natural"}}),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.CatalogItemResponse
	response.FromModel(item)

	assert.Equal(t, item.ID, response.ID)
	assert.Equal(t, item.Name, response.Name)
	assert.True(t, item.Price.Equal(response.Price))
	assert.Nil(t, response.StockControl)
	assert.Len(t, response.Flavors, 1)
	assert.Equal(t, "Natural", response.Flavors[0].Name)
	assert.Equal(t, item.CreatedBy, response.CreatedBy)
}

func TestGetCatalogItemsResponse_FromModels(t *testing.T) {
	items := []model.CatalogItem{
		{ID: "test-id-1", Name: "Tapioca", Type: model.TypeFood},
		{ID: "test-id-2", Name: "Toalha extra", Type: model.TypeLoan},
	}

	var response dto.GetCatalogItemsResponse
	response.FromModels(items, 12, 10)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Items, 2)
	assert.Equal(t, "test-id-1", response.Items[0].ID)
	assert.Equal(t, "test-id-2", response.Items[1].ID)
}
