package model

import (
	"pousada/shared/jsonb"
	"pousada/shared/model"
)

const (
	TableName  = "cabins"
	EntityName = "cabin"

	FieldID            = "id"
	FieldName          = "name"
	FieldCapacity      = "capacity"
	FieldIsPetFriendly = "is_pet_friendly"
	FieldIsActive      = "is_active"
)

type Details struct {
	Bedrooms   int  `json:"bedrooms"`
	Bathrooms  int  `json:"bathrooms"`
	HasKitchen bool `json:"has_kitchen"`
}

type AccessInfo struct {
	WifiSSID     string `json:"wifi_ssid"`
	WifiPassword string `json:"wifi_password"`
	GateCode     string `json:"gate_code"`
}

type Cabin struct {
	ID              string                   `db:"id"`
	PropertyID      string                   `db:"property_id"`
	Name            string                   `db:"name"`
	Description     string                   `db:"description"`
	Capacity        int                      `db:"capacity"`
	IsPetFriendly   bool                     `db:"is_pet_friendly"`
	IsActive        bool                     `db:"is_active"`
	Details         jsonb.Column[Details]    `db:"details"`
	LinkedEquipment jsonb.Column[[]string]   `db:"linked_equipment"`
	AccessInfo      jsonb.Column[AccessInfo] `db:"access_info"`
	model.Metadata
}
