package dto

import (
	"time"

	"pousada/internal/domains/stay/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/google/uuid"
)

type CreateStayRequest struct {
	GuestRef                  string    `json:"guest_ref"                   validate:"required,len=11,numeric"`
	CabinRef                  string    `json:"cabin_ref"                   validate:"required,uuid4"`
	CheckIn                   time.Time `json:"check_in"                    validate:"required"`
	CheckOut                  time.Time `json:"check_out"                   validate:"required,gtfield=CheckIn"`
	Status                    string    `json:"status"                      validate:"omitempty,oneof=active upcoming completed cancelled"`
	NumberOfGuests            int       `json:"number_of_guests"            validate:"required,min=1"`
	BreakfastModalityOverride string    `json:"breakfast_modality_override" validate:"omitempty,oneof=delivery salon"`
}

func (c *CreateStayRequest) ToModel(user, propertyID, guestName, cabinName string) model.Stay {
	status := c.Status
	if status == "" {
		status = model.StatusUpcoming
	}

	return model.Stay{
		ID:                        uuid.New().String(),
		PropertyID:                propertyID,
		GuestRef:                  c.GuestRef,
		CabinRef:                  c.CabinRef,
		GuestName:                 guestName,
		CabinName:                 cabinName,
		CheckIn:                   c.CheckIn,
		CheckOut:                  c.CheckOut,
		Status:                    status,
		NumberOfGuests:            c.NumberOfGuests,
		BreakfastModalityOverride: c.BreakfastModalityOverride,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStayRequest struct {
	CheckIn                   *time.Time `db:"check_in"                    json:"check_in"                    validate:"omitempty"`
	CheckOut                  *time.Time `db:"check_out"                   json:"check_out"                    validate:"omitempty"`
	Status                    *string    `db:"status"                      json:"status"                      validate:"omitempty,oneof=active upcoming completed cancelled"`
	NumberOfGuests            *int       `db:"number_of_guests"            json:"number_of_guests"            validate:"omitempty,min=1"`
	BreakfastModalityOverride *string    `db:"breakfast_modality_override" json:"breakfast_modality_override" validate:"omitempty,oneof=delivery salon"`
}

type StayResponse struct {
	ID                        string `json:"id"`
	GuestRef                  string `json:"guest_ref"`
	CabinRef                  string `json:"cabin_ref"`
	GuestName                 string `json:"guest_name"`
	CabinName                 string `json:"cabin_name"`
	CheckIn                   string `json:"check_in"`
	CheckOut                  string `json:"check_out"`
	Status                    string `json:"status"`
	NumberOfGuests            int    `json:"number_of_guests"`
	BreakfastModalityOverride string `json:"breakfast_modality_override,omitempty"`
	gDto.Metadata
}

func (r *StayResponse) FromModel(mod model.Stay) {
	r.ID = mod.ID
	r.GuestRef = mod.GuestRef
	r.CabinRef = mod.CabinRef
	r.GuestName = mod.GuestName
	r.CabinName = mod.CabinName
	r.CheckIn = mod.CheckIn.Format(time.RFC3339)
	r.CheckOut = mod.CheckOut.Format(time.RFC3339)
	r.Status = mod.Status
	r.NumberOfGuests = mod.NumberOfGuests
	r.BreakfastModalityOverride = mod.BreakfastModalityOverride
	r.Metadata.FromModel(mod.Metadata)
}

type GetStaysResponse struct {
	Stays     []StayResponse `json:"stays"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetStaysResponse) FromModels(models []model.Stay, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stays = make([]StayResponse, len(models))
	for i, mod := range models {
		r.Stays[i].FromModel(mod)
	}
}
