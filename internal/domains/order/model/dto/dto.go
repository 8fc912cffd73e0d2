package dto

import (
	"time"

	"pousada/internal/domains/order/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	CatalogItemRef string `json:"catalog_item_ref" validate:"required,uuid4"`
	Quantity       int    `json:"quantity"         validate:"required,min=1"`
	Observations   string `json:"observations"     validate:"omitempty,max=500"`
	Status         string `json:"status"           validate:"omitempty,oneof=pending confirmed delivered cancelled"`
}

func (c *CreateOrderRequest) ToModel(user, stayID, itemName string, total decimal.Decimal) model.Order {
	status := c.Status
	if status == "" {
		status = model.StatusPending
	}

	return model.Order{
		ID:             uuid.New().String(),
		StayRef:        stayID,
		CatalogItemRef: c.CatalogItemRef,
		ItemName:       itemName,
		Quantity:       c.Quantity,
		TotalPrice:     total,
		Observations:   c.Observations,
		Status:         status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type OrderResponse struct {
	ID             string `json:"id"`
	StayRef        string `json:"stay_ref"`
	CatalogItemRef string `json:"catalog_item_ref"`
	ItemName       string `json:"item_name"`
	Quantity       int    `json:"quantity"`
	TotalPrice     string `json:"total_price"`
	Observations   string `json:"observations,omitempty"`
	Status         string `json:"status"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(mod model.Order) {
	r.ID = mod.ID
	r.StayRef = mod.StayRef
	r.CatalogItemRef = mod.CatalogItemRef
	r.ItemName = mod.ItemName
	r.Quantity = mod.Quantity
	r.TotalPrice = mod.TotalPrice.String()
	r.Observations = mod.Observations
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}

// BreakfastOrderResponse is an order annotated with the stay it belongs to.
type BreakfastOrderResponse struct {
	ID        string `json:"id"`
	StayRef   string `json:"stay_ref"`
	ItemName  string `json:"item_name"`
	ItemType  string `json:"item_type"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
	GuestName string `json:"guest_name"`
	CabinName string `json:"cabin_name"`
	Modality  string `json:"modality,omitempty"`
	CreatedAt string `json:"created_at"`
}

func (r *BreakfastOrderResponse) FromModel(mod model.Order, itemType string) {
	r.ID = mod.ID
	r.StayRef = mod.StayRef
	r.ItemName = mod.ItemName
	r.ItemType = itemType
	r.Quantity = mod.Quantity
	r.Status = mod.Status
	r.GuestName = mod.GuestName
	r.CabinName = mod.CabinName
	r.Modality = mod.StayModality
	r.CreatedAt = mod.CreatedAt.Format(time.RFC3339)
}

type GetBreakfastOrdersResponse struct {
	Orders []BreakfastOrderResponse `json:"orders"`
}

type ExpectedDinersResponse struct {
	ExpectedDiners int `json:"expected_diners"`
}
