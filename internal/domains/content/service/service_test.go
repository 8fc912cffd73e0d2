package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	contentMocks "pousada/internal/domains/content/mocks"
	"pousada/internal/domains/content/model"
	"pousada/internal/domains/content/model/dto"
	"pousada/internal/domains/content/service"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/constant"
	"pousada/shared/jsonb"
)

func newContentService(t *testing.T) (service.Content, *contentMocks.MockContent, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := contentMocks.NewMockContent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.PropertyID = "pousada-test"
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestContentService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newContentService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateContentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation of a guide",
			req: dto.CreateContentRequest{
				Title:    "Wi-Fi Access",
				Type:     model.TypeGuide,
				Category: "amenities",
				Body:     "The network name is Pousada-Guest.",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "successful creation of an event with details",
			req: dto.CreateContentRequest{
				Title:    "Luau na Praia",
				Type:     model.TypeEvent,
				Category: "activities",
				EventDetails: &dto.EventDetails{
					Start:    "2026-09-05T19:00:00Z",
					End:      "2026-09-05T23:00:00Z",
					Location: "Praia Central",
				},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateContentRequest{
				Title:    "House Rules",
				Type:     model.TypePolicy,
				Category: "policies",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newContentService(t)

	content := model.Content{
		ID:       "content-id",
		Title:    "Luau na Praia",
		Type:     model.TypeEvent,
		Category: "activities",
		EventDetails: jsonb.Of(&model.EventDetails{
			Start: "2026-09-05T19:00:00Z",
			End:   "2026-09-05T23:00:00Z",
		}),
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
					Return(content, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "content-id",
		},
		{
			name: "content not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Content{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), "content-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
					assert.NotNil(t, result.EventDetails)
				}
			}
		})
	}
}

func TestContentService_Update(t *testing.T) {
	svc, mockRepo, mockCache := newContentService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	guide := model.Content{ID: "content-id", Title: "Wi-Fi Access", Type: model.TypeGuide}
	event := model.Content{ID: "content-id", Title: "Luau na Praia", Type: model.TypeEvent}

	tests := []struct {
		name      string
		req       dto.UpdateContentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateContentRequest{Title: "Wi-Fi and Network Access"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guide, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "type change rejected",
			req:  dto.UpdateContentRequest{Type: model.TypeEvent},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guide, nil)
			},
			wantErr: true,
		},
		{
			name: "event details rejected on a guide",
			req: dto.UpdateContentRequest{
				EventDetails: &dto.EventDetails{Start: "2026-09-05T19:00:00Z", End: "2026-09-05T23:00:00Z"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guide, nil)
			},
			wantErr: true,
		},
		{
			name: "event details accepted on an event",
			req: dto.UpdateContentRequest{
				EventDetails: &dto.EventDetails{Start: "2026-09-06T19:00:00Z", End: "2026-09-06T23:00:00Z"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(event, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "content not found",
			req:  dto.UpdateContentRequest{Title: "Whatever"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Content{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "content-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newContentService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "content not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "content-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
