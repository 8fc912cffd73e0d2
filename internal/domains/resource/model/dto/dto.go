package dto

import (
	"pousada/internal/domains/resource/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/google/uuid"
)

type Slot struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end"   validate:"required,datetime=15:04"`
}

type ScheduleRule struct {
	ID         string   `json:"id"           validate:"omitempty"`
	Name       string   `json:"name"         validate:"required,min=3,max=100"`
	DaysOfWeek []string `json:"days_of_week" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Slots      []Slot   `json:"slots"        validate:"required,min=1,dive"`
}

func (s *ScheduleRule) ToModel() model.ScheduleRule {
	id := s.ID
	if id == "" {
		id = uuid.NewString()
	}

	slots := make([]model.Slot, len(s.Slots))
	for i, slot := range s.Slots {
		slots[i] = model.Slot(slot)
	}

	return model.ScheduleRule{
		ID:         id,
		Name:       s.Name,
		DaysOfWeek: s.DaysOfWeek,
		Slots:      slots,
	}
}

type CreateResourceRequest struct {
	Name                 string         `json:"name"                  validate:"required,max=100"`
	Type                 string         `json:"type"                  validate:"required,oneof=amenity service"`
	Capacity             int            `json:"capacity"              validate:"required,min=1"`
	BookingDuration      int            `json:"booking_duration"      validate:"required,min=15"`
	Rules                string         `json:"rules"                 validate:"omitempty,max=2000"`
	RequiresConfirmation *bool          `json:"requires_confirmation" validate:"omitempty"`
	IsActive             *bool          `json:"is_active"             validate:"omitempty"`
	ScheduleRules        []ScheduleRule `json:"schedule_rules"        validate:"omitempty,dive"`
}

func (c *CreateResourceRequest) ToModel(user, propertyID string) model.Resource {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	requiresConfirmation := false
	if c.RequiresConfirmation != nil {
		requiresConfirmation = *c.RequiresConfirmation
	}

	rules := make([]model.ScheduleRule, len(c.ScheduleRules))
	for i := range c.ScheduleRules {
		rules[i] = c.ScheduleRules[i].ToModel()
	}

	return model.Resource{
		ID:                   uuid.NewString(),
		PropertyID:           propertyID,
		Name:                 c.Name,
		Type:                 c.Type,
		Capacity:             c.Capacity,
		BookingDuration:      c.BookingDuration,
		Rules:                c.Rules,
		RequiresConfirmation: requiresConfirmation,
		IsActive:             active,
		ScheduleRules:        jsonb.Of(rules),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateResourceRequest deliberately has no schedule rules field; those are
// replaced wholesale through ReplaceSchedulesRequest.
type UpdateResourceRequest struct {
	Name                 string `db:"name"                  json:"name"                  validate:"omitempty,max=100"`
	Capacity             *int   `db:"capacity"              json:"capacity"              validate:"omitempty,min=1"`
	BookingDuration      *int   `db:"booking_duration"      json:"booking_duration"      validate:"omitempty,min=15"`
	Rules                string `db:"rules"                 json:"rules"                 validate:"omitempty,max=2000"`
	RequiresConfirmation *bool  `db:"requires_confirmation" json:"requires_confirmation" validate:"omitempty"`
	IsActive             *bool  `db:"is_active"             json:"is_active"             validate:"omitempty"`
}

type ReplaceSchedulesRequest struct {
	Schedules []ScheduleRule `json:"schedules" validate:"dive"`
}

type ResourceResponse struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Type                 string         `json:"type"`
	Capacity             int            `json:"capacity"`
	BookingDuration      int            `json:"booking_duration"`
	Rules                string         `json:"rules"`
	RequiresConfirmation bool           `json:"requires_confirmation"`
	IsActive             bool           `json:"is_active"`
	ScheduleRules        []ScheduleRule `json:"schedule_rules"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(mod model.Resource) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Type = mod.Type
	r.Capacity = mod.Capacity
	r.BookingDuration = mod.BookingDuration
	r.Rules = mod.Rules
	r.RequiresConfirmation = mod.RequiresConfirmation
	r.IsActive = mod.IsActive

	r.ScheduleRules = make([]ScheduleRule, len(mod.ScheduleRules.V))
	for i, rule := range mod.ScheduleRules.V {
		slots := make([]Slot, len(rule.Slots))
		for j, slot := range rule.Slots {
			slots[j] = Slot(slot)
		}

		r.ScheduleRules[i] = ScheduleRule{
			ID:         rule.ID,
			Name:       rule.Name,
			DaysOfWeek: rule.DaysOfWeek,
			Slots:      slots,
		}
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}
