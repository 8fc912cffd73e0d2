package model

import (
	"pousada/shared/jsonb"
	"pousada/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldIdentity = "identity"
	FieldHistory  = "history"
	FieldNotes    = "notes"
)

type Identity struct {
	FullName  string `json:"full_name"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type History struct {
	TotalStays int             `json:"total_stays"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	LastVisit  string          `json:"last_visit"`
}

type Notes struct {
	Preferences string `json:"preferences"`
	Warnings    string `json:"warnings"`
}

// Guest rows are keyed by the guest's CPF. FullName is denormalized out of
// the identity document for ordering and searching.
type Guest struct {
	ID         string                 `db:"id"`
	PropertyID string                 `db:"property_id"`
	FullName   string                 `db:"full_name"`
	Identity   jsonb.Column[Identity] `db:"identity"`
	History    jsonb.Column[History]  `db:"history"`
	Notes      jsonb.Column[Notes]    `db:"notes"`
	model.Metadata
}
