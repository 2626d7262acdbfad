package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"decor/config"
	kafkaMocks "decor/infras/kafka/mocks"
	"decor/infras/otel/mocks"
	"decor/infras/s3"
	s3Mocks "decor/infras/s3/mocks"
	catalogMocks "decor/internal/domains/catalog/mocks"
	serviceMocks "decor/internal/domains/service/mocks"
	"decor/internal/domains/service/model"
	"decor/internal/domains/service/model/dto"
	"decor/internal/domains/service/service"
	cacheMocks "decor/shared/cache/mocks"
	"decor/shared/constant"
	gModel "decor/shared/model"
	"decor/shared/timezone"
)

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

type serviceFixture struct {
	repo    *serviceMocks.MockService
	cache   *cacheMocks.MockRedisCache
	s3      *s3Mocks.MockS3
	events  *kafkaMocks.MockClient
	catalog *catalogMocks.MockRefresher
	svc     service.Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		repo:    serviceMocks.NewMockService(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		s3:      s3Mocks.NewMockS3(ctrl),
		events:  kafkaMocks.NewMockClient(ctrl),
		catalog: catalogMocks.NewMockRefresher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3, f.events, f.catalog)

	return f
}

// expectWritePropagation covers the async cache invalidation, catalog refresh
// and event publish that follow every successful write.
func (f *serviceFixture) expectWritePropagation() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.catalog.EXPECT().Refresh(gomock.Any()).AnyTimes()
	f.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestServiceService_Upsert(t *testing.T) {
	existing := model.Service{
		ID:    "id-1",
		Slug:  "birthday",
		Title: "Birthday Celebrations",
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: "admin",
		},
	}

	tests := []struct {
		name      string
		slug      string
		req       dto.UpsertServiceRequest
		setupMock func(f *serviceFixture)
		wantErr   bool
	}{
		{
			name: "insert when slug is new",
			slug: "Baby Shower",
			req:  dto.UpsertServiceRequest{Title: "Baby Shower", PriceStart: 3500},
			setupMock: func(f *serviceFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Service{}, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Service) error {
						assert.Equal(t, "baby-shower", m.Slug)

						return nil
					})

				f.expectWritePropagation()
			},
		},
		{
			name: "merge when slug exists",
			slug: "birthday",
			req:  dto.UpsertServiceRequest{PriceStart: 2499, Features: []string{"LED Lights"}},
			setupMock: func(f *serviceFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existing, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Contains(t, fields, model.FieldPriceStart)
						assert.Contains(t, fields, model.FieldFeatures)
						// Unset fields must not be overwritten.
						assert.NotContains(t, fields, model.FieldTitle)

						return nil
					})

				f.expectWritePropagation()
			},
		},
		{
			name:      "empty slug rejected",
			slug:      "@#$",
			req:       dto.UpsertServiceRequest{},
			setupMock: func(f *serviceFixture) {},
			wantErr:   true,
		},
		{
			name: "repository error",
			slug: "birthday",
			req:  dto.UpsertServiceRequest{},
			setupMock: func(f *serviceFixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Service{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
			err := f.svc.Upsert(ctx, tt.req, tt.slug)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestServiceService_Get(t *testing.T) {
	f := newServiceFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Service{ID: "id-1", Slug: "birthday", Title: "Birthday Celebrations"}, nil)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.Get(context.Background(), "birthday")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "Birthday Celebrations", res.Title)
}

func TestServiceService_GetNotFound(t *testing.T) {
	f := newServiceFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Service{}, nil)

	_, err := f.svc.Get(context.Background(), "unknown")

	assert.Error(t, err)
}

func TestServiceService_UploadHeroImage(t *testing.T) {
	makeRequest := func() dto.UploadImageRequest {
		return dto.UploadImageRequest{
			Image: &multipart.FileHeader{
				Filename: "hero.png",
				Size:     1024,
			},
			ImageFile: fakeFile{bytes.NewReader([]byte("fake image data"))},
		}
	}

	uploadChannels := func(result s3.UploadResult) (<-chan int, <-chan s3.UploadResult) {
		progressCh := make(chan int, 2)
		progressCh <- 50
		progressCh <- 100
		close(progressCh)

		resultCh := make(chan s3.UploadResult, 1)
		resultCh <- result
		close(resultCh)

		return progressCh, resultCh
	}

	t.Run("successful upload updates the row", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.s3.EXPECT().
			UploadFileWithProgress(gomock.Any(), gomock.Any(), "services/birthday", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uploadChannels(s3.UploadResult{URL: "https://cdn.example.com/services/birthday/hero_1.png"}))

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "https://cdn.example.com/services/birthday/hero_1.png", fields[model.FieldImage])

				return nil
			})

		f.expectWritePropagation()

		res, err := f.svc.UploadHeroImage(context.Background(), makeRequest(), "birthday")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/services/birthday/hero_1.png", res.URL)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.UploadHeroImage(context.Background(), makeRequest(), "unknown")

		assert.Error(t, err)
	})

	t.Run("failed upload leaves the row untouched", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.s3.EXPECT().
			UploadFileWithProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uploadChannels(s3.UploadResult{Err: errors.New("upload aborted")}))

		_, err := f.svc.UploadHeroImage(context.Background(), makeRequest(), "birthday")

		assert.Error(t, err)
	})
}
