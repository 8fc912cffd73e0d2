package model

import (
	"pousada/shared/jsonb"
	"pousada/shared/model"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID            = "id"
	FieldName          = "name"
	FieldProfile       = "profile"
	FieldCustomization = "customization"
	FieldSettings      = "settings"

	ModalityDelivery = "delivery"
	ModalitySalon    = "salon"
	ModalityBoth     = "both"
)

type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	MapsLink string `json:"maps_link"`
}

type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type Profile struct {
	Name    string  `json:"name"`
	LogoURL string  `json:"logo_url"`
	Address Address `json:"address"`
	Contact Contact `json:"contact"`
}

type Customization struct {
	PrimaryColor string `json:"primary_color"`
	Font         string `json:"font"`
}

type HourRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ConciergeModule struct {
	Enabled        bool      `json:"enabled"`
	OperatingHours HourRange `json:"operating_hours"`
}

type HousekeepingModule struct {
	Enabled      bool      `json:"enabled"`
	BookingHours HourRange `json:"booking_hours"`
}

type BreakfastModule struct {
	Enabled       bool      `json:"enabled"`
	Modality      string    `json:"modality"`
	OrderDeadline string    `json:"order_deadline"`
	ServingHours  HourRange `json:"serving_hours"`
}

type WifiAccess struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

type GeneralAccess struct {
	MainGateCode string     `json:"main_gate_code"`
	Wifi         WifiAccess `json:"wifi"`
}

type Settings struct {
	Concierge     ConciergeModule    `json:"module_concierge"`
	Housekeeping  HousekeepingModule `json:"module_housekeeping"`
	Breakfast     BreakfastModule    `json:"module_breakfast"`
	GeneralAccess GeneralAccess      `json:"general_access"`
}

// Property is the single business this deployment serves. The row id is
// fixed by configuration and created once through the guarded setup.
type Property struct {
	ID            string                      `db:"id"`
	Name          string                      `db:"name"`
	Profile       jsonb.Column[Profile]       `db:"profile"`
	Customization jsonb.Column[Customization] `db:"customization"`
	Settings      jsonb.Column[Settings]      `db:"settings"`
	model.Metadata
}
