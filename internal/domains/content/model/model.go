package model

import (
	"pousada/shared/jsonb"
	"pousada/shared/model"
)

const (
	TableName  = "contents"
	EntityName = "content"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldIsPublished = "is_published"
)

const (
	TypePolicy    = "policy"
	TypeGuide     = "guide"
	TypeEvent     = "event"
	TypeManual    = "manual"
	TypeProcedure = "procedure"
)

type EventDetails struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
}

type Content struct {
	ID             string                       `db:"id"`
	PropertyID     string                       `db:"property_id"`
	Title          string                       `db:"title"`
	Type           string                       `db:"type"`
	Category       string                       `db:"category"`
	Body           string                       `db:"body"`
	IsPublished    bool                         `db:"is_published"`
	TargetAudience jsonb.Column[[]string]       `db:"target_audience"`
	EventDetails   jsonb.Column[*EventDetails]  `db:"event_details"`
	model.Metadata
}
