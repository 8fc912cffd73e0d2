package dto_test

import (
	"testing"

	"pousada/internal/domains/guest/model"
	"pousada/internal/domains/guest/model/dto"
	"pousada/shared/jsonb"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateGuestRequest_ToModel(t *testing.T) {
	req := dto.CreateGuestRequest{
		Identity: dto.Identity{
			FullName: "Maria Silva",
			CPF:      "12345678901",
			Email:    "maria@example.com",
		},
		Notes: &dto.Notes{Preferences: "quarto silencioso"},
	}

	userID := "test-user-id"
	guest := req.ToModel(userID, "property-id")

	assert.Equal(t, "12345678901", guest.ID, "expected CPF to be the row ID")
	assert.Equal(t, "property-id", guest.PropertyID)
	assert.Equal(t, "Maria Silva", guest.FullName)
	assert.Equal(t, "maria@example.com", guest.Identity.V.Email)
	assert.Zero(t, guest.History.V.TotalStays, "expected history to start empty")
	assert.True(t, guest.History.V.TotalSpent.IsZero())
	assert.Equal(t, "quarto silencioso", guest.Notes.V.Preferences)
	assert.Equal(t, userID, guest.CreatedBy)
	assert.False(t, guest.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateGuestRequest_ToModel_WithoutNotes(t *testing.T) {
	req := dto.CreateGuestRequest{
		Identity: dto.Identity{FullName: "Maria Silva", CPF: "12345678901"},
	}

	guest := req.ToModel("test-user-id", "property-id")

	assert.Empty(t, guest.Notes.V.Preferences)
	assert.Empty(t, guest.Notes.V.Warnings)
}

func TestGuestResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	guest := model.Guest{
		ID:       "12345678901",
		FullName: "Maria Silva",
		Identity: jsonb.Of(model.Identity{
			FullName: "Maria Silva",
			CPF:      "12345678901",
			Phone:    "+55 11 99999-0000",
		}),
		History: jsonb.Of(model.History{
			TotalStays: 4,
			TotalSpent: decimal.NewFromFloat(1250.75),
			LastVisit:  "2026-08-15",
		}),
		Notes: jsonb.Of(model.Notes{Warnings: "alergia a amendoim"}),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.GuestResponse
	response.FromModel(guest)

	assert.Equal(t, guest.ID, response.ID)
	assert.Equal(t, guest.FullName, response.FullName)
	assert.Equal(t, "+55 11 99999-0000", response.Identity.Phone)
	assert.Equal(t, 4, response.History.TotalStays)
	assert.Equal(t, "1250.75", response.History.TotalSpent)
	assert.Equal(t, "2026-08-15", response.History.LastVisit)
	assert.Equal(t, "alergia a amendoim", response.Notes.Warnings)
	assert.Equal(t, guest.CreatedBy, response.CreatedBy)
}

func TestGetGuestsResponse_FromModels(t *testing.T) {
	guests := []model.Guest{
		{ID: "12345678901", FullName: "Maria Silva"},
		{ID: "98765432100", FullName: "João Souza"},
	}

	var response dto.GetGuestsResponse
	response.FromModels(guests, 2, 10)

	assert.Equal(t, 2, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Guests, 2)
	assert.Equal(t, "Maria Silva", response.Guests[0].FullName)
}
