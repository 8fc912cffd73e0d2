package dto

import (
	"pousada/internal/domains/guest/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type Identity struct {
	FullName  string `json:"full_name"  validate:"required,max=150"`
	CPF       string `json:"cpf"        validate:"required,len=11,numeric"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Phone     string `json:"phone"      validate:"omitempty,max=30"`
	Address   string `json:"address"    validate:"omitempty,max=300"`
}

type Notes struct {
	Preferences string `json:"preferences" validate:"omitempty,max=2000"`
	Warnings    string `json:"warnings"    validate:"omitempty,max=2000"`
}

type CreateGuestRequest struct {
	Identity Identity `json:"identity" validate:"required"`
	Notes    *Notes   `json:"notes"    validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel(user, propertyID string) model.Guest {
	notes := model.Notes{}
	if c.Notes != nil {
		notes = model.Notes(*c.Notes)
	}

	return model.Guest{
		ID:         c.Identity.CPF,
		PropertyID: propertyID,
		FullName:   c.Identity.FullName,
		Identity:   jsonb.Of(model.Identity(c.Identity)),
		History:    jsonb.Of(model.History{}),
		Notes:      jsonb.Of(notes),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Identity *Identity `json:"identity" validate:"omitempty"`
	Notes    *Notes    `json:"notes"    validate:"omitempty"`
}

type History struct {
	TotalStays int    `json:"total_stays"`
	TotalSpent string `json:"total_spent"`
	LastVisit  string `json:"last_visit"`
}

type GuestResponse struct {
	ID       string   `json:"id"`
	FullName string   `json:"full_name"`
	Identity Identity `json:"identity"`
	History  History  `json:"history"`
	Notes    Notes    `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.FullName = mod.FullName
	r.Identity = Identity(mod.Identity.V)
	r.History = History{
		TotalStays: mod.History.V.TotalStays,
		TotalSpent: mod.History.V.TotalSpent.String(),
		LastVisit:  mod.History.V.LastVisit,
	}
	r.Notes = Notes(mod.Notes.V)
	r.Metadata.FromModel(mod.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
