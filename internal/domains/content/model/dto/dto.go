package dto

import (
	"pousada/internal/domains/content/model"
	"pousada/shared"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/google/uuid"
)

type EventDetails struct {
	Start    string `json:"start"    validate:"required"`
	End      string `json:"end"      validate:"required"`
	Location string `json:"location" validate:"omitempty,max=200"`
}

type CreateContentRequest struct {
	Title          string        `json:"title"           validate:"required,max=200"`
	Type           string        `json:"type"            validate:"required,oneof=policy guide event manual procedure"`
	Category       string        `json:"category"        validate:"required,max=100"`
	Body           string        `json:"body"            validate:"omitempty"`
	IsPublished    *bool         `json:"is_published"    validate:"omitempty"`
	TargetAudience []string      `json:"target_audience" validate:"omitempty,dive,required"`
	EventDetails   *EventDetails `json:"event_details"   validate:"required_if=Type event,excluded_unless=Type event"`
}

func (c *CreateContentRequest) ToModel(user, propertyID string) model.Content {
	published := false
	if c.IsPublished != nil {
		published = *c.IsPublished
	}

	var eventDetails *model.EventDetails
	if c.EventDetails != nil {
		eventDetails = &model.EventDetails{
			Start:    c.EventDetails.Start,
			End:      c.EventDetails.End,
			Location: c.EventDetails.Location,
		}
	}

	return model.Content{
		ID:             uuid.NewString(),
		PropertyID:     propertyID,
		Title:          c.Title,
		Type:           c.Type,
		Category:       c.Category,
		Body:           c.Body,
		IsPublished:    published,
		TargetAudience: jsonb.Of(c.TargetAudience),
		EventDetails:   jsonb.Of(eventDetails),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateContentRequest struct {
	Title          string        `db:"title"        json:"title"           validate:"omitempty,max=200"`
	Type           string        `json:"type"       validate:"omitempty,oneof=policy guide event manual procedure"`
	Category       string        `db:"category"     json:"category"        validate:"omitempty,max=100"`
	Body           string        `db:"body"         json:"body"            validate:"omitempty"`
	IsPublished    *bool         `db:"is_published" json:"is_published"    validate:"omitempty"`
	TargetAudience []string      `json:"target_audience" validate:"omitempty,dive,required"`
	EventDetails   *EventDetails `json:"event_details"   validate:"omitempty"`
}

type ContentResponse struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Type           string        `json:"type"`
	Category       string        `json:"category"`
	Body           string        `json:"body"`
	IsPublished    bool          `json:"is_published"`
	TargetAudience []string      `json:"target_audience"`
	EventDetails   *EventDetails `json:"event_details,omitempty"`
	gDto.Metadata
}

func (r *ContentResponse) FromModel(mod model.Content) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Type = mod.Type
	r.Category = mod.Category
	r.Body = mod.Body
	r.IsPublished = mod.IsPublished
	r.TargetAudience = mod.TargetAudience.V

	if mod.EventDetails.V != nil {
		r.EventDetails = &EventDetails{
			Start:    mod.EventDetails.V.Start,
			End:      mod.EventDetails.V.End,
			Location: mod.EventDetails.V.Location,
		}
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetContentsResponse struct {
	Contents  []ContentResponse `json:"contents"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContentsResponse) FromModels(models []model.Content, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contents = make([]ContentResponse, len(models))
	for i, mod := range models {
		r.Contents[i].FromModel(mod)
	}
}
