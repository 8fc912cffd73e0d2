package dto_test

import (
	"testing"
	"time"

	catalogModel "pousada/internal/domains/catalog/model"
	"pousada/internal/domains/order/model"
	"pousada/internal/domains/order/model/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRequest_ToModel(t *testing.T) {
	req := dto.CreateOrderRequest{
		CatalogItemRef: "item-id",
		Quantity:       3,
		Observations:   "sem açúcar",
	}

	userID := "test-user-id"
	total := decimal.NewFromFloat(37.50)
	order := req.ToModel(userID, "stay-id", "Tapioca", total)

	assert.NotEmpty(t, order.ID, "expected ID to be generated")
	assert.Equal(t, "stay-id", order.StayRef)
	assert.Equal(t, "item-id", order.CatalogItemRef)
	assert.Equal(t, "Tapioca", order.ItemName)
	assert.Equal(t, 3, order.Quantity)
	assert.True(t, total.Equal(order.TotalPrice))
	assert.Equal(t, "sem açúcar", order.Observations)
	assert.Equal(t, model.StatusPending, order.Status, "expected status to default to pending")
	assert.Equal(t, userID, order.CreatedBy)
	assert.False(t, order.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateOrderRequest_ToModel_ExplicitStatus(t *testing.T) {
	req := dto.CreateOrderRequest{
		CatalogItemRef: "item-id",
		Quantity:       1,
		Status:         model.StatusConfirmed,
	}

	order := req.ToModel("test-user-id", "stay-id", "Tapioca", decimal.NewFromFloat(12.50))

	assert.Equal(t, model.StatusConfirmed, order.Status)
}

func TestOrderResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	order := model.Order{
		ID:             "test-id",
		StayRef:        "stay-id",
		CatalogItemRef: "item-id",
		ItemName:       "Suco de laranja",
		Quantity:       2,
		TotalPrice:     decimal.NewFromFloat(16.00),
		Status:         model.StatusDelivered,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.OrderResponse
	response.FromModel(order)

	assert.Equal(t, order.ID, response.ID)
	assert.Equal(t, order.ItemName, response.ItemName)
	assert.Equal(t, "16", response.TotalPrice)
	assert.Equal(t, order.Status, response.Status)
	assert.Equal(t, order.CreatedBy, response.CreatedBy)
}

func TestBreakfastOrderResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	order := model.Order{
		ID:           "test-id",
		StayRef:      "stay-id",
		ItemName:     "Tapioca",
		Quantity:     1,
		Status:       model.StatusPending,
		GuestName:    "Maria Silva",
		CabinName:    "Chalé Ipê",
		StayModality: "delivery",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BreakfastOrderResponse
	response.FromModel(order, catalogModel.TypeFood)

	assert.Equal(t, order.ID, response.ID)
	assert.Equal(t, catalogModel.TypeFood, response.ItemType)
	assert.Equal(t, "Maria Silva", response.GuestName)
	assert.Equal(t, "Chalé Ipê", response.CabinName)
	assert.Equal(t, "delivery", response.Modality)
	assert.Equal(t, now.Format(time.RFC3339), response.CreatedAt)
}

func TestGetOrdersResponse_FromModels(t *testing.T) {
	orders := []model.Order{
		{ID: "test-id-1", Status: model.StatusPending},
		{ID: "test-id-2", Status: model.StatusDelivered},
	}

	var response dto.GetOrdersResponse
	response.FromModels(orders, 25, 10)

	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Orders, 2)
	assert.Equal(t, "test-id-1", response.Orders[0].ID)
}
