package catalog

//go:generate go run go.uber.org/mock/mockgen -source=./catalog.go -destination=./mocks/catalog_mock.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"decor/config"
	"decor/infras/otel"
	momentRepo "decor/internal/domains/moment/repository"
	productRepo "decor/internal/domains/product/repository"
	serviceRepo "decor/internal/domains/service/repository"
	testimonialRepo "decor/internal/domains/testimonial/repository"
	"decor/shared/constant"
	gDto "decor/shared/dto"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const pqErrorCodeInsufficientPrivilege = "42501"

// Refresher is the write-side hook: anything that mutates catalog data calls
// it so readers converge on the new state.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Catalog aggregates every public-facing collection into one in-memory
// snapshot. It is seeded with static data at construction and never errors;
// a failed refresh simply retains the previous state per collection.
type Catalog interface {
	Refresher
	Snapshot() Snapshot
	Loading() bool
}

type aggregatorImpl struct {
	serviceRepo     serviceRepo.Service
	productRepo     productRepo.Product
	testimonialRepo testimonialRepo.Testimonial
	momentRepo      momentRepo.Moment
	cfg             *config.Config
	otel            otel.Otel

	mu         sync.RWMutex
	snapshot   Snapshot
	appliedGen uint64

	generation atomic.Uint64
	loading    atomic.Bool
}

func New(
	services serviceRepo.Service,
	products productRepo.Product,
	testimonials testimonialRepo.Testimonial,
	moments momentRepo.Moment,
	cfg *config.Config,
	otl otel.Otel,
) Catalog {
	return &aggregatorImpl{
		serviceRepo:     services,
		productRepo:     products,
		testimonialRepo: testimonials,
		momentRepo:      moments,
		cfg:             cfg,
		otel:            otl,
		snapshot: Snapshot{
			Services:     SeedServices(),
			Products:     SeedProducts(cfg.App.Business.Currency, cfg.App.Business.DeliveryEstimate),
			Testimonials: SeedTestimonials(),
			Moments:      []Moment{},
		},
	}
}

// Snapshot returns the current catalog view. The slice headers are copied so
// the caller can iterate without holding the lock.
func (a *aggregatorImpl) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.snapshot
}

func (a *aggregatorImpl) Loading() bool {
	return a.loading.Load()
}

// Refresh reloads every collection from storage. Each collection is refreshed
// independently: an empty or failed read keeps the collection it had before.
// A stale refresh (one that lost the race against a newer call) is discarded
// wholesale so results never apply out of order.
func (a *aggregatorImpl) Refresh(ctx context.Context) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, "catalog.Refresh")
	defer scope.End()

	generation := a.generation.Add(1)

	a.loading.Store(true)
	defer a.loading.Store(false)

	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	next := Snapshot{}

	rows, err := a.serviceRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		logRefreshFailure(err, "services")
	} else {
		for _, row := range rows {
			next.Services = append(next.Services, NormalizeService(row))
		}
	}

	productRows, err := a.productRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		logRefreshFailure(err, "products")
	} else {
		for _, row := range productRows {
			next.Products = append(next.Products, NormalizeProduct(row, a.cfg.App.Business.Currency, a.cfg.App.Business.DeliveryEstimate))
		}
	}

	testimonialRows, err := a.testimonialRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		logRefreshFailure(err, "testimonials")
	} else {
		for _, row := range testimonialRows {
			next.Testimonials = append(next.Testimonials, NormalizeTestimonial(row))
		}
	}

	momentRows, err := a.momentRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		logRefreshFailure(err, "moments")
	} else {
		for _, row := range momentRows {
			next.Moments = append(next.Moments, NormalizeMoment(row))
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if generation <= a.appliedGen {
		log.Info().Uint64("generation", generation).Msg("discarding stale catalog refresh")

		return
	}

	a.appliedGen = generation

	if len(next.Services) > 0 {
		a.snapshot.Services = next.Services
	}

	if len(next.Products) > 0 {
		a.snapshot.Products = next.Products
	}

	if len(next.Testimonials) > 0 {
		a.snapshot.Testimonials = next.Testimonials
	}

	if len(next.Moments) > 0 {
		a.snapshot.Moments = next.Moments
	}

	log.Info().
		Uint64("generation", generation).
		Int("services", len(a.snapshot.Services)).
		Int("products", len(a.snapshot.Products)).
		Int("testimonials", len(a.snapshot.Testimonials)).
		Int("moments", len(a.snapshot.Moments)).
		Msg("catalog refreshed")
}

func logRefreshFailure(err error, collection string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqErrorCodeInsufficientPrivilege {
		log.Warn().Err(err).Str("collection", collection).Msg("catalog refresh denied, keeping previous state")

		return
	}

	log.Error().Err(err).Str("collection", collection).Msg("catalog refresh failed, keeping previous state")
}
