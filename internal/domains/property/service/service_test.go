package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	propertyMocks "pousada/internal/domains/property/mocks"
	"pousada/internal/domains/property/model"
	"pousada/internal/domains/property/model/dto"
	"pousada/internal/domains/property/service"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/constant"
	gDto "pousada/shared/dto"
	"pousada/shared/jsonb"
)

func newPropertyService(t *testing.T) (service.Property, *propertyMocks.MockProperty, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := propertyMocks.NewMockProperty(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.PropertyID = "pousada-test"
	cfg.App.SetupToken = "setup-secret"
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestPropertyService_Setup(t *testing.T) {
	svc, mockRepo, mockCache := newPropertyService(t)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.SetupPropertyRequest{Name: "Pousada do Mar"}

	tests := []struct {
		name        string
		token       string
		setupMock   func()
		wantCreated bool
		wantErr     bool
	}{
		{
			name:  "first run creates the property",
			token: "setup-secret",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, property model.Property) error {
						assert.Equal(t, "pousada-test", property.ID)
						assert.Equal(t, "Pousada do Mar", property.Name)
						assert.True(t, property.Settings.V.Breakfast.Enabled)

						return nil
					})
			},
			wantCreated: true,
			wantErr:     false,
		},
		{
			name:  "second run is a no-op",
			token: "setup-secret",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCreated: false,
			wantErr:     false,
		},
		{
			name:      "wrong token rejected",
			token:     "wrong",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "empty token rejected",
			token:     "",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			created, err := svc.Setup(context.Background(), tt.token, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCreated, created)
			}
		})
	}
}

func TestPropertyService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newPropertyService(t)

	property := model.Property{
		ID:   "pousada-test",
		Name: "Pousada do Mar",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "pousada-test",
		},
		{
			name: "property not yet set up",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestPropertyService_UpdateBreakfastSettings(t *testing.T) {
	svc, mockRepo, mockCache := newPropertyService(t)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	property := model.Property{
		ID:   "pousada-test",
		Name: "Pousada do Mar",
		Settings: jsonb.Of(model.Settings{
			Concierge: model.ConciergeModule{Enabled: true},
			Breakfast: model.BreakfastModule{
				Enabled:       true,
				Modality:      model.ModalitySalon,
				OrderDeadline: "20:00",
				ServingHours:  model.HourRange{Start: "08:00", End: "10:00"},
			},
		}),
	}

	modality := model.ModalityDelivery

	tests := []struct {
		name      string
		req       dto.UpdateBreakfastSettingsRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "patches only the breakfast module",
			req:  dto.UpdateBreakfastSettingsRequest{Modality: &modality},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(property, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						column, ok := fields[model.FieldSettings].(jsonb.Column[model.Settings])
						if !ok {
							return errors.New("settings missing from update")
						}

						assert.Equal(t, model.ModalityDelivery, column.V.Breakfast.Modality)
						assert.Equal(t, "20:00", column.V.Breakfast.OrderDeadline)
						assert.True(t, column.V.Concierge.Enabled)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "property not yet set up",
			req:  dto.UpdateBreakfastSettingsRequest{Modality: &modality},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Property{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateBreakfastSettings(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPropertyService_GetBreakfastSettings(t *testing.T) {
	svc, mockRepo, _ := newPropertyService(t)

	property := model.Property{
		ID: "pousada-test",
		Settings: jsonb.Of(model.Settings{
			Breakfast: model.BreakfastModule{
				Enabled:       true,
				Modality:      model.ModalitySalon,
				OrderDeadline: "20:00",
			},
		}),
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(property, nil)

	result, err := svc.GetBreakfastSettings(context.Background())

	assert.NoError(t, err)
	assert.True(t, result.Enabled)
	assert.Equal(t, model.ModalitySalon, result.Modality)
	assert.Equal(t, "20:00", result.OrderDeadline)
}
