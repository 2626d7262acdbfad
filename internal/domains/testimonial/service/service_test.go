package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"decor/config"
	kafkaMocks "decor/infras/kafka/mocks"
	"decor/infras/otel/mocks"
	catalogMocks "decor/internal/domains/catalog/mocks"
	testimonialMocks "decor/internal/domains/testimonial/mocks"
	"decor/internal/domains/testimonial/model"
	"decor/internal/domains/testimonial/model/dto"
	"decor/internal/domains/testimonial/service"
	cacheMocks "decor/shared/cache/mocks"
	"decor/shared/constant"
	gDto "decor/shared/dto"
)

type testimonialFixture struct {
	repo    *testimonialMocks.MockTestimonial
	cache   *cacheMocks.MockRedisCache
	events  *kafkaMocks.MockClient
	catalog *catalogMocks.MockRefresher
	svc     service.Testimonial
}

func newTestimonialFixture(t *testing.T) *testimonialFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &testimonialFixture{
		repo:    testimonialMocks.NewMockTestimonial(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		events:  kafkaMocks.NewMockClient(ctrl),
		catalog: catalogMocks.NewMockRefresher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.events, f.catalog)

	return f
}

func (f *testimonialFixture) expectWritePropagation() {
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.catalog.EXPECT().Refresh(gomock.Any()).AnyTimes()
	f.events.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestTestimonialService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestimonialFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Testimonial) error {
				assert.Equal(t, "Priya Singh", m.Name)
				assert.Equal(t, "admin", m.CreatedBy)

				return nil
			})

		f.expectWritePropagation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
		err := f.svc.Create(ctx, dto.CreateTestimonialRequest{
			Name:    "Priya Singh",
			Rating:  5,
			Comment: "Absolutely stunning decoration!",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("insert failure", func(t *testing.T) {
		f := newTestimonialFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := f.svc.Create(context.Background(), dto.CreateTestimonialRequest{
			Name:    "Priya Singh",
			Rating:  5,
			Comment: "Absolutely stunning decoration!",
		})

		assert.Error(t, err)
	})
}

func TestTestimonialService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestimonialFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		f.expectWritePropagation()

		err := f.svc.Delete(context.Background(), "t-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("unknown testimonial", func(t *testing.T) {
		f := newTestimonialFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.EqualError(t, err, "testimonial not found")
	})
}

func TestTestimonialService_GetAll(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newTestimonialFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out any) error {
				res, _ := out.(*dto.GetTestimonialsResponse)
				res.TotalData = 1
				res.Testimonials = []dto.TestimonialResponse{{ID: "t-1", Name: "Priya Singh"}}

				return nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Testimonials, 1)
	})

	t.Run("cache miss", func(t *testing.T) {
		f := newTestimonialFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Testimonial{{ID: "t-1", Name: "Priya Singh", Rating: 5}}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Testimonials, 1)
		assert.Equal(t, 1, res.TotalData)
	})
}
