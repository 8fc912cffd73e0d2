package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	cabinMocks "pousada/internal/domains/cabin/mocks"
	cabinModel "pousada/internal/domains/cabin/model"
	guestMocks "pousada/internal/domains/guest/mocks"
	guestModel "pousada/internal/domains/guest/model"
	guestService "pousada/internal/domains/guest/service"
	orderMocks "pousada/internal/domains/order/mocks"
	stayMocks "pousada/internal/domains/stay/mocks"
	"pousada/internal/domains/stay/model"
	"pousada/internal/domains/stay/model/dto"
	"pousada/internal/domains/stay/service"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
	"pousada/shared/timezone"
)

type stayServiceMocks struct {
	repo      *stayMocks.MockStay
	guestRepo *guestMocks.MockGuest
	cabinRepo *cabinMocks.MockCabin
	orderRepo *orderMocks.MockOrder
	cache     *cacheMocks.MockRedisCache
}

func newStayService(t *testing.T) (service.Stay, stayServiceMocks) {
	ctrl := gomock.NewController(t)

	m := stayServiceMocks{
		repo:      stayMocks.NewMockStay(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		cabinRepo: cabinMocks.NewMockCabin(ctrl),
		orderRepo: orderMocks.NewMockOrder(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.PropertyID = "pousada-test"
	cfg.Cache.TTL = 3600

	guests := guestService.New(m.guestRepo, cfg, m.cache, mockOtel)
	svc := service.New(m.repo, m.guestRepo, m.cabinRepo, m.orderRepo, guests, cfg, m.cache, mockOtel)

	return svc, m
}

func TestStayService_Create(t *testing.T) {
	svc, m := newStayService(t)

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	checkIn := timezone.Now()
	req := dto.CreateStayRequest{
		GuestRef:       "12345678901",
		CabinRef:       "cabin-id",
		CheckIn:        checkIn,
		CheckOut:       checkIn.AddDate(0, 0, 3),
		NumberOfGuests: 2,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation snapshots guest and cabin names",
			setupMock: func() {
				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "12345678901", FullName: "Maria da Silva"}, nil)

				m.cabinRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cabinModel.Cabin{ID: "cabin-id", Name: "Chale Azul"}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, stay model.Stay) error {
						assert.Equal(t, "Maria da Silva", stay.GuestName)
						assert.Equal(t, "Chale Azul", stay.CabinName)
						assert.Equal(t, model.StatusUpcoming, stay.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown guest reference",
			setupMock: func() {
				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown cabin reference",
			setupMock: func() {
				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "12345678901", FullName: "Maria da Silva"}, nil)

				m.cabinRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cabinModel.Cabin{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStayService_GetAll_ResolvesNames(t *testing.T) {
	svc, m := newStayService(t)

	stays := []model.Stay{
		{ID: "stay-1", GuestRef: "12345678901", CabinRef: "cabin-1", GuestName: "Old Name", CabinName: "Old Cabin"},
		{ID: "stay-2", GuestRef: "99999999999", CabinRef: "cabin-1", GuestName: "Gone Guest", CabinName: "Old Cabin"},
	}

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stays, nil)

	// Only the first guest still exists; the cabin lookup fails outright.
	m.guestRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]guestModel.Guest{{ID: "12345678901", FullName: "Maria da Silva"}}, nil)

	m.cabinRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, result.Stays, 2)
	assert.Equal(t, "Maria da Silva", result.Stays[0].GuestName)
	assert.Equal(t, constant.GuestNotFoundLabel, result.Stays[1].GuestName)
	assert.Equal(t, "Old Cabin", result.Stays[0].CabinName)
	assert.Equal(t, "Old Cabin", result.Stays[1].CabinName)
}

func TestStayService_Update(t *testing.T) {
	svc, m := newStayService(t)

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	checkOut := timezone.Now()
	active := model.Stay{
		ID:       "stay-1",
		GuestRef: "12345678901",
		CabinRef: "cabin-1",
		Status:   model.StatusActive,
		CheckOut: checkOut,
	}
	completed := active
	completed.Status = model.StatusCompleted

	statusCompleted := model.StatusCompleted
	guests := 3

	tests := []struct {
		name      string
		req       dto.UpdateStayRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "completion folds order totals into guest history",
			req:  dto.UpdateStayRequest{Status: &statusCompleted},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(active, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.orderRepo.EXPECT().
					SumTotalsByStay(gomock.Any(), "stay-1").
					Return(decimal.NewFromInt(180), nil)

				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{
						ID:      "12345678901",
						History: jsonb.Of(guestModel.History{TotalStays: 1, TotalSpent: decimal.NewFromInt(100)}),
					}, nil)

				m.guestRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						column, ok := fields[guestModel.FieldHistory].(jsonb.Column[guestModel.History])
						if !ok {
							return errors.New("history missing from update")
						}

						assert.Equal(t, 2, column.V.TotalStays)
						assert.True(t, column.V.TotalSpent.Equal(decimal.NewFromInt(280)))

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "already completed stay does not touch history again",
			req:  dto.UpdateStayRequest{Status: &statusCompleted},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "history failure does not fail the update",
			req:  dto.UpdateStayRequest{Status: &statusCompleted},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(active, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.orderRepo.EXPECT().
					SumTotalsByStay(gomock.Any(), "stay-1").
					Return(decimal.Zero, errors.New("database error"))

				m.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, errors.New("database error"))
			},
			wantErr: false,
		},
		{
			name: "plain update without status change",
			req:  dto.UpdateStayRequest{NumberOfGuests: &guests},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(active, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "stay not found",
			req:  dto.UpdateStayRequest{NumberOfGuests: &guests},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Stay{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "stay-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStayService_Get(t *testing.T) {
	svc, m := newStayService(t)

	stay := model.Stay{
		ID:        "stay-1",
		GuestRef:  "12345678901",
		CabinRef:  "cabin-1",
		GuestName: "Maria da Silva",
		CabinName: "Chale Azul",
		CheckIn:   time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 9, 4, 11, 0, 0, 0, time.UTC),
		Status:    model.StatusActive,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stay, nil)

				m.guestRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]guestModel.Guest{{ID: "12345678901", FullName: "Maria da Silva"}}, nil)

				m.cabinRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]cabinModel.Cabin{{ID: "cabin-1", Name: "Chale Azul"}}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "stay-1",
		},
		{
			name: "stay not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Stay{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "stay-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
				assert.Equal(t, "Maria da Silva", result.GuestName)
			}
		})
	}
}
