package model

import (
	"pousada/shared/jsonb"
	"pousada/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "catalog_items"
	EntityName = "catalog_item"

	FieldID       = "id"
	FieldName     = "name"
	FieldType     = "type"
	FieldCategory = "category"
	FieldIsActive = "is_active"
	FieldImageURL = "image_url"
)

const (
	TypeLoan       = "loan"
	TypeConsumable = "consumable"
	TypeFood       = "food"
	TypeBeverage   = "beverage"
)

// IsStockControlled reports whether the item type carries stock control
// rather than flavors.
func IsStockControlled(itemType string) bool {
	return itemType == TypeLoan || itemType == TypeConsumable
}

type StockControl struct {
	Enabled  bool `json:"enabled"`
	Quantity int  `json:"quantity"`
}

type Flavor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CatalogItem struct {
	ID           string                       `db:"id"`
	PropertyID   string                       `db:"property_id"`
	Name         string                       `db:"name"`
	Type         string                       `db:"type"`
	Category     string                       `db:"category"`
	Description  string                       `db:"description"`
	Price        decimal.Decimal              `db:"price"`
	ImageURL     string                       `db:"image_url"`
	IsActive     bool                         `db:"is_active"`
	StockControl jsonb.Column[*StockControl]  `db:"stock_control"`
	Flavors      jsonb.Column[[]Flavor]       `db:"flavors"`
	model.Metadata
}
