package model

import (
	"pousada/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID             = "id"
	FieldStayRef        = "stay_ref"
	FieldCatalogItemRef = "catalog_item_ref"
	FieldItemName       = "item_name"
	FieldQuantity       = "quantity"
	FieldTotalPrice     = "total_price"
	FieldObservations   = "observations"
	FieldStatus         = "status"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order belongs to a stay and is property-scoped through it. GuestName and
// CabinName are projected from the joined stay row and are never written.
type Order struct {
	ID             string          `db:"id"`
	StayRef        string          `db:"stay_ref"`
	CatalogItemRef string          `db:"catalog_item_ref"`
	ItemName       string          `db:"item_name"`
	Quantity       int             `db:"quantity"`
	TotalPrice     decimal.Decimal `db:"total_price"`
	Observations   string          `db:"observations"`
	Status         string          `db:"status"`
	GuestName      string          `db:"guest_name"                  table:"stays"`
	CabinName      string          `db:"cabin_name"                  table:"stays"`
	StayModality   string          `db:"breakfast_modality_override" table:"stays"`
	model.Metadata
}

func (Order) GetJoinQuery() string {
	return "JOIN stays ON stays.id = orders.stay_ref"
}
