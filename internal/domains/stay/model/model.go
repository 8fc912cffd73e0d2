package model

import (
	"time"

	"pousada/shared/model"
)

const (
	TableName  = "stays"
	EntityName = "stay"

	FieldID                        = "id"
	FieldGuestRef                  = "guest_ref"
	FieldCabinRef                  = "cabin_ref"
	FieldGuestName                 = "guest_name"
	FieldCabinName                 = "cabin_name"
	FieldCheckIn                   = "check_in"
	FieldCheckOut                  = "check_out"
	FieldStatus                    = "status"
	FieldNumberOfGuests            = "number_of_guests"
	FieldBreakfastModalityOverride = "breakfast_modality_override"

	StatusActive    = "active"
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Stay references a guest by CPF and a cabin by id. The names are
// denormalized at creation time and refreshed from the live rows on reads.
type Stay struct {
	ID                        string    `db:"id"`
	PropertyID                string    `db:"property_id"`
	GuestRef                  string    `db:"guest_ref"`
	CabinRef                  string    `db:"cabin_ref"`
	GuestName                 string    `db:"guest_name"`
	CabinName                 string    `db:"cabin_name"`
	CheckIn                   time.Time `db:"check_in"`
	CheckOut                  time.Time `db:"check_out"`
	Status                    string    `db:"status"`
	NumberOfGuests            int       `db:"number_of_guests"`
	BreakfastModalityOverride string    `db:"breakfast_modality_override"`
	model.Metadata
}
