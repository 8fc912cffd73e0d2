package dto

import (
	"mime/multipart"

	"pousada/internal/domains/catalog/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StockControl struct {
	Enabled  bool `json:"enabled"`
	Quantity int  `json:"quantity" validate:"min=0"`
}

type Flavor struct {
	ID          string `json:"id"          validate:"omitempty"`
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type CreateCatalogItemRequest struct {
	Name         string                `json:"name"        validate:"required,min=3,max=100"`
	Type         string                `json:"type"        validate:"required,oneof=loan consumable food beverage"`
	Category     string                `json:"category"    validate:"required,max=100"`
	Description  string                `json:"description" validate:"omitempty,max=2000"`
	Price        decimal.Decimal       `json:"price"       validate:"-"`
	Image        *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	IsActive     *bool                 `json:"is_active"     validate:"omitempty"`
	StockControl *StockControl         `json:"stock_control" validate:"omitempty"`
	Flavors      []Flavor              `json:"flavors"       validate:"omitempty,dive"`
}

func (c *CreateCatalogItemRequest) ToModel(user, propertyID, imageURL string) model.CatalogItem {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	var stockControl *model.StockControl
	var flavors []model.Flavor

	if model.IsStockControlled(c.Type) {
		stockControl = &model.StockControl{}
		if c.StockControl != nil {
			stockControl.Enabled = c.StockControl.Enabled
			stockControl.Quantity = c.StockControl.Quantity
		}
	} else {
		flavors = make([]model.Flavor, len(c.Flavors))
		for i, flavor := range c.Flavors {
			id := flavor.ID
			if id == "" {
				id = uuid.NewString()
			}

			flavors[i] = model.Flavor{
				ID:          id,
				Name:        flavor.Name,
				Description: flavor.Description,
			}
		}
	}

	return model.CatalogItem{
		ID:           uuid.NewString(),
		PropertyID:   propertyID,
		Name:         c.Name,
		Type:         c.Type,
		Category:     c.Category,
		Description:  c.Description,
		Price:        c.Price,
		ImageURL:     imageURL,
		IsActive:     active,
		StockControl: jsonb.Of(stockControl),
		Flavors:      jsonb.Of(flavors),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCatalogItemRequest struct {
	Name         string                `db:"name"        json:"name"        validate:"omitempty,min=3,max=100"`
	Type         string                `json:"type"      validate:"omitempty,oneof=loan consumable food beverage"`
	Category     string                `db:"category"    json:"category"    validate:"omitempty,max=100"`
	Description  string                `db:"description" json:"description" validate:"omitempty,max=2000"`
	Price        *decimal.Decimal      `db:"price"       json:"price"       validate:"-"`
	Image        *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	IsActive     *bool                 `db:"is_active"   json:"is_active" validate:"omitempty"`
	StockControl *StockControl         `json:"stock_control" validate:"omitempty"`
	Flavors      []Flavor              `json:"flavors"       validate:"omitempty,dive"`
}

type CatalogItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	IsActive     bool            `json:"is_active"`
	StockControl *StockControl   `json:"stock_control,omitempty"`
	Flavors      []Flavor        `json:"flavors,omitempty"`
	gDto.Metadata
}

func (r *CatalogItemResponse) FromModel(mod model.CatalogItem) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Type = mod.Type
	r.Category = mod.Category
	r.Description = mod.Description
	r.Price = mod.Price
	r.ImageURL = mod.ImageURL
	r.IsActive = mod.IsActive

	if mod.StockControl.V != nil {
		r.StockControl = &StockControl{
			Enabled:  mod.StockControl.V.Enabled,
			Quantity: mod.StockControl.V.Quantity,
		}
	}

	if len(mod.Flavors.V) > 0 {
		r.Flavors = make([]Flavor, len(mod.Flavors.V))
		for i, flavor := range mod.Flavors.V {
			r.Flavors[i] = Flavor(flavor)
		}
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetCatalogItemsResponse struct {
	Items     []CatalogItemResponse `json:"items"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetCatalogItemsResponse) FromModels(models []model.CatalogItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]CatalogItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
