package model

import (
	"pousada/shared/jsonb"
	"pousada/shared/model"
)

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID            = "id"
	FieldName          = "name"
	FieldType          = "type"
	FieldIsActive      = "is_active"
	FieldScheduleRules = "schedule_rules"
)

const (
	TypeAmenity = "amenity"
	TypeService = "service"
)

type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleRule struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	DaysOfWeek []string `json:"days_of_week"`
	Slots      []Slot   `json:"slots"`
}

type Resource struct {
	ID                   string                       `db:"id"`
	PropertyID           string                       `db:"property_id"`
	Name                 string                       `db:"name"`
	Type                 string                       `db:"type"`
	Capacity             int                          `db:"capacity"`
	BookingDuration      int                          `db:"booking_duration"`
	Rules                string                       `db:"rules"`
	RequiresConfirmation bool                         `db:"requires_confirmation"`
	IsActive             bool                         `db:"is_active"`
	ScheduleRules        jsonb.Column[[]ScheduleRule] `db:"schedule_rules"`
	model.Metadata
}
