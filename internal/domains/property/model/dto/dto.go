package dto

import (
	"pousada/internal/domains/property/model"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type AddressRequest struct {
	Street   string `json:"street"    validate:"omitempty,max=300"`
	City     string `json:"city"      validate:"omitempty,max=150"`
	MapsLink string `json:"maps_link" validate:"omitempty,url"`
}

type ContactRequest struct {
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	WhatsApp string `json:"whatsapp" validate:"omitempty,max=30"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

type SetupPropertyRequest struct {
	Name    string          `json:"name"    validate:"required,min=2,max=150"`
	Address *AddressRequest `json:"address" validate:"omitempty"`
	Contact *ContactRequest `json:"contact" validate:"omitempty"`
}

// ToModel seeds the property row with every module enabled on sane
// defaults, to be tuned through the settings endpoints afterwards.
func (c *SetupPropertyRequest) ToModel(propertyID string) model.Property {
	profile := model.Profile{Name: c.Name}
	if c.Address != nil {
		profile.Address = model.Address(*c.Address)
	}

	if c.Contact != nil {
		profile.Contact = model.Contact(*c.Contact)
	}

	settings := model.Settings{
		Concierge: model.ConciergeModule{
			Enabled:        true,
			OperatingHours: model.HourRange{Start: "08:00", End: "18:00"},
		},
		Housekeeping: model.HousekeepingModule{
			Enabled:      true,
			BookingHours: model.HourRange{Start: "09:00", End: "16:00"},
		},
		Breakfast: model.BreakfastModule{
			Enabled:       true,
			Modality:      model.ModalitySalon,
			OrderDeadline: "20:00",
			ServingHours:  model.HourRange{Start: "08:00", End: "10:00"},
		},
	}

	return model.Property{
		ID:            propertyID,
		Name:          c.Name,
		Profile:       jsonb.Of(profile),
		Customization: jsonb.Of(model.Customization{}),
		Settings:      jsonb.Of(settings),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "setup",
			ModifiedBy: "setup",
		},
	}
}

type PropertyResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Profile       model.Profile       `json:"profile"`
	Customization model.Customization `json:"customization"`
	Settings      model.Settings      `json:"settings"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(mod model.Property) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Profile = mod.Profile.V
	r.Customization = mod.Customization.V
	r.Settings = mod.Settings.V
	r.Metadata.FromModel(mod.Metadata)
}

type HourRangeRequest struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end"   validate:"required,datetime=15:04"`
}

type UpdateBreakfastSettingsRequest struct {
	Enabled       *bool             `json:"enabled"        validate:"omitempty"`
	Modality      *string           `json:"modality"       validate:"omitempty,oneof=delivery salon both"`
	OrderDeadline *string           `json:"order_deadline" validate:"omitempty,datetime=15:04"`
	ServingHours  *HourRangeRequest `json:"serving_hours"  validate:"omitempty"`
}

type BreakfastSettingsResponse struct {
	Enabled       bool            `json:"enabled"`
	Modality      string          `json:"modality"`
	OrderDeadline string          `json:"order_deadline"`
	ServingHours  model.HourRange `json:"serving_hours"`
}

func (r *BreakfastSettingsResponse) FromModel(mod model.BreakfastModule) {
	r.Enabled = mod.Enabled
	r.Modality = mod.Modality
	r.OrderDeadline = mod.OrderDeadline
	r.ServingHours = mod.ServingHours
}
