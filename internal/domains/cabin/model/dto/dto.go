package dto

import (
	"pousada/internal/domains/cabin/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/google/uuid"
)

type Details struct {
	Bedrooms   int  `json:"bedrooms"   validate:"omitempty,min=0"`
	Bathrooms  int  `json:"bathrooms"  validate:"omitempty,min=0"`
	HasKitchen bool `json:"has_kitchen"`
}

type AccessInfo struct {
	WifiSSID     string `json:"wifi_ssid"     validate:"omitempty,max=100"`
	WifiPassword string `json:"wifi_password" validate:"omitempty,max=100"`
	GateCode     string `json:"gate_code"     validate:"omitempty,max=20"`
}

type CreateCabinRequest struct {
	Name            string      `json:"name"             validate:"required,max=100"`
	Description     string      `json:"description"      validate:"omitempty,max=2000"`
	Capacity        int         `json:"capacity"         validate:"required,min=1"`
	IsPetFriendly   *bool       `json:"is_pet_friendly"  validate:"omitempty"`
	IsActive        *bool       `json:"is_active"        validate:"omitempty"`
	Details         *Details    `json:"details"          validate:"omitempty"`
	LinkedEquipment []string    `json:"linked_equipment" validate:"omitempty,dive,required"`
	AccessInfo      *AccessInfo `json:"access_info"      validate:"omitempty"`
}

func (c *CreateCabinRequest) ToModel(user, propertyID string) model.Cabin {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	petFriendly := false
	if c.IsPetFriendly != nil {
		petFriendly = *c.IsPetFriendly
	}

	details := model.Details{}
	if c.Details != nil {
		details = model.Details(*c.Details)
	}

	accessInfo := model.AccessInfo{}
	if c.AccessInfo != nil {
		accessInfo = model.AccessInfo(*c.AccessInfo)
	}

	return model.Cabin{
		ID:              uuid.NewString(),
		PropertyID:      propertyID,
		Name:            c.Name,
		Description:     c.Description,
		Capacity:        c.Capacity,
		IsPetFriendly:   petFriendly,
		IsActive:        active,
		Details:         jsonb.Of(details),
		LinkedEquipment: jsonb.Of(c.LinkedEquipment),
		AccessInfo:      jsonb.Of(accessInfo),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCabinRequest struct {
	Name            string                          `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string                          `db:"description"      json:"description"      validate:"omitempty,max=2000"`
	Capacity        *int                            `db:"capacity"         json:"capacity"         validate:"omitempty,min=1"`
	IsPetFriendly   *bool                           `db:"is_pet_friendly"  json:"is_pet_friendly"  validate:"omitempty"`
	IsActive        *bool                           `db:"is_active"        json:"is_active"        validate:"omitempty"`
	Details         *jsonb.Column[Details]          `db:"details"          json:"details"          validate:"omitempty"`
	LinkedEquipment *jsonb.Column[[]string]         `db:"linked_equipment" json:"linked_equipment" validate:"omitempty"`
	AccessInfo      *jsonb.Column[AccessInfo]       `db:"access_info"      json:"access_info"      validate:"omitempty"`
}

type CabinResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Capacity        int        `json:"capacity"`
	IsPetFriendly   bool       `json:"is_pet_friendly"`
	IsActive        bool       `json:"is_active"`
	Details         Details    `json:"details"`
	LinkedEquipment []string   `json:"linked_equipment"`
	AccessInfo      AccessInfo `json:"access_info"`
	gDto.Metadata
}

func (r *CabinResponse) FromModel(model model.Cabin) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.IsPetFriendly = model.IsPetFriendly
	r.IsActive = model.IsActive
	r.Details = Details(model.Details.V)
	r.LinkedEquipment = model.LinkedEquipment.V
	r.AccessInfo = AccessInfo(model.AccessInfo.V)
	r.Metadata.FromModel(model.Metadata)
}

type GetCabinsResponse struct {
	Cabins    []CabinResponse `json:"cabins"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetCabinsResponse) FromModels(models []model.Cabin, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cabins = make([]CabinResponse, len(models))
	for i, mod := range models {
		r.Cabins[i].FromModel(mod)
	}
}
